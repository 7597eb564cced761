// Package main provides the CLI entry point for xlsxgen-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/input"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
)

var (
	outputPath     string
	pretty         bool
	strict         bool
	verbose        bool
	lockWindows    bool
	unlockObjects  bool
	unlockStruct   bool
	descriptorPath string
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsxgen",
		Short: "Generate Excel workbooks from declarative definitions",
		Long: `xlsxgen-go builds .xlsx files from YAML or JSON workbook definitions
and computes the SHA-512 password descriptors used by sheet and workbook protection.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			log.SetLevel(logrus.InfoLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-sheet progress")

	buildCmd := &cobra.Command{
		Use:   "build [definition]",
		Short: "Write an .xlsx file from a .yaml, .yml or .json definition",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: definition name with .xlsx)")
	buildCmd.Flags().BoolVar(&strict, "strict", false, "Reject malformed cell references instead of using A1")
	buildCmd.Flags().BoolVar(&lockWindows, "lock-windows", false, "Lock workbook windows when the workbook has a password")
	buildCmd.Flags().BoolVar(&unlockObjects, "unlock-objects", false, "Leave drawing objects editable on protected sheets")
	buildCmd.Flags().BoolVar(&unlockStruct, "unlock-structure", false, "Leave the sheet structure editable when the workbook has a password")

	hashCmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Print the protection descriptor of a password as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runHash,
	}
	hashCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	verifyCmd := &cobra.Command{
		Use:   "verify [password]",
		Short: "Check a password against a JSON descriptor",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}
	verifyCmd.Flags().StringVarP(&descriptorPath, "descriptor", "d", "", "Descriptor JSON file (default: stdin)")

	rootCmd.AddCommand(buildCmd, hashCmd, verifyCmd)
	return rootCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	def, err := input.LoadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read definition: %w", err)
	}

	policy := models.PolicyFallback
	if strict {
		policy = models.PolicyStrict
	}
	wb, err := input.Build(cmd.Context(), def, input.Options{Policy: policy})
	if err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}

	dest := outputPath
	if dest == "" {
		dest = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}

	opts := xlsxgen.Options{
		Logger:         log.WithField("output", dest),
		ProtectObjects: boolFlag(!unlockObjects),
		LockStructure:  boolFlag(!unlockStruct),
		LockWindows:    boolFlag(lockWindows),
	}
	if err := xlsxgen.ExportFile(wb, dest, opts); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	log.WithFields(logrus.Fields{"output": dest, "sheets": wb.Len()}).Info("workbook written")
	return nil
}

func runHash(cmd *cobra.Command, args []string) error {
	desc, err := protect.Deriver{}.DeriveContext(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("derivation failed: %w", err)
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(desc, "", "  ")
	} else {
		data, err = json.Marshal(desc)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if descriptorPath != "" {
		f, err := os.Open(descriptorPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var desc protect.Descriptor
	if err := json.NewDecoder(in).Decode(&desc); err != nil {
		return fmt.Errorf("failed to read descriptor: %w", err)
	}
	if err := protect.Verify(args[0], &desc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func boolFlag(b bool) *bool { return &b }
