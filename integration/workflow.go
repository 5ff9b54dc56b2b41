package integration

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ethereum/go-ethereum/log"
)

// WorkflowBinary is the workflow engine invoked before output checks.
const WorkflowBinary = "nextflow"

// WorkflowScript is the pipeline entry point.
const WorkflowScript = "prep_riboviz.nf"

// workflowArgs assembles the workflow invocation for a configuration.
func workflowArgs(configFile string) []string {
	return []string{"run", WorkflowScript, "-params-file", configFile, "-ansi-log", "false"}
}

// runWorkflow runs the pipeline for the configuration, inheriting
// stdout and stderr so workflow progress is visible in the test log.
func runWorkflow(configFile string) error {
	args := workflowArgs(configFile)
	log.Info("Running workflow", "binary", WorkflowBinary, "config", configFile)

	cmd := exec.Command(WorkflowBinary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("workflow run failed: %w", err)
	}
	return nil
}
