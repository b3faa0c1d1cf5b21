package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fluxo_propostas/internal/usecase"
)

func (c *cli) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import external orders from JSON or YAML files",
		Long: `Reads one or more order payloads (a single object or a list per file) and runs
each through the reimport merge engine, exactly as POST /v1/imports does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runImport,
	}
	cmd.Flags().Bool("continue-on-error", false, "keep importing after a failed payload")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	return cmd
}

func (c *cli) runImport(cmd *cobra.Command, files []string) error {
	keepGoing, _ := cmd.Flags().GetBool("continue-on-error")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	ctx := cmd.Context()

	var payloads []usecase.ImportPayload
	for _, file := range files {
		batch, err := readPayloads(file)
		if err != nil {
			return err
		}
		payloads = append(payloads, batch...)
	}

	container, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = container.Close(ctx) }()

	bar := progressbar.NewOptions(len(payloads),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetVisibility(!noProgress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("importing orders"),
		progressbar.OptionClearOnFinish(),
	)

	var failed int
	for _, p := range payloads {
		proposal, err := container.Importer.ImportProposal(ctx, p)
		_ = bar.Add(1)
		if err != nil {
			failed++
			slog.Error("[import][cli] import failed", "external_id", p.ExternalID, "err", err)
			if !keepGoing {
				return fmt.Errorf("import %s: %w", p.ExternalID, err)
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ExternalID, proposal.ID, proposal.Status)
	}
	_ = bar.Finish()

	if failed > 0 {
		return fmt.Errorf("%d of %d imports failed", failed, len(payloads))
	}
	return nil
}

// readPayloads decodes a file holding one payload or a list of them. YAML files
// are converted to JSON first so both formats share the payload's JSON mapping.
func readPayloads(path string) ([]usecase.ImportPayload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid yaml in %s: %w", path, err)
		}
		if raw, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("unsupported yaml in %s: %w", path, err)
		}
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	var payloads []usecase.ImportPayload
	if raw[0] == '[' {
		err = json.Unmarshal(raw, &payloads)
	} else {
		var single usecase.ImportPayload
		err = json.Unmarshal(raw, &single)
		payloads = append(payloads, single)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid payload in %s: %w", path, err)
	}
	for i, p := range payloads {
		if strings.TrimSpace(p.ExternalID) == "" {
			return nil, fmt.Errorf("%s: payload %d: missing external_id", path, i)
		}
	}
	return payloads, nil
}
