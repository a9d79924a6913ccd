package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keksclan/goKeyly/keyly"
	"github.com/keksclan/goKeyly/keylyconfig"
)

var checkConfigPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Extract every key named in a config file",
	Long: `Load a key-set config (JSON, YAML or Lua, selected by extension),
run one extraction per entry and report the per-key status. Exits
non-zero when any entry fails.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "path to the key-set config file")
	_ = checkCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(checkCmd)
}

func loaderFor(path string) (keylyconfig.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return keylyconfig.FromJSONFile(path), nil
	case ".yaml", ".yml":
		return keylyconfig.FromYAMLFile(path), nil
	case ".lua":
		return keylyconfig.FromLuaFile(path), nil
	default:
		return nil, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader, err := loaderFor(checkConfigPath)
	if err != nil {
		return err
	}
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	ex, err := keyly.New(*cfg)
	if err != nil {
		return err
	}

	results := ex.ExtractAll()
	failed := 0
	for _, k := range cfg.Keys {
		res := results[k.Name]
		if res.OK() {
			fmt.Printf("%s: ok (%s)\n", k.Name, describeKey(res.Key))
			continue
		}
		failed++
		fmt.Printf("%s: %v\n", k.Name, res.Errors[0])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d keys failed", failed, len(cfg.Keys))
	}
	return nil
}
