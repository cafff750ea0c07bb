// output.go holds the shared result-printing helper for subcommands.
package cli

import (
	"encoding/json"
	"fmt"
)

// printResult emits the structured result on stdout when --json is set.
// In text mode the subcommands print their own human-readable line and
// this helper is a no-op.
func printResult(result map[string]interface{}) error {
	if !jsonOutput {
		return nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
