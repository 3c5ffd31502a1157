package action

import (
	"fmt"
	"os"
)

// WriteOutputs appends the run result to the GITHUB_OUTPUT file in
// name=value form so downstream workflow steps can read it. Outside a
// runner the variable is unset and this is a no-op.
func WriteOutputs(res Result) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "posts_fetched=%d\nchanged=%t\ncommit_sha=%s\n",
		res.PostCount, res.Changed, res.Commit)
	if err != nil {
		return fmt.Errorf("writing outputs: %w", err)
	}

	return nil
}
