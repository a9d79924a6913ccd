package keylyconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/keksclan/goKeyly/keyly"
	lua "github.com/yuin/gopher-lua"
	"gopkg.in/yaml.v3"
)

// Loader loads a keyly.Config from a source.
type Loader interface {
	Load(ctx context.Context) (*keyly.Config, error)
}

// goLoader returns a static config.
type goLoader struct {
	cfg keyly.Config
}

// FromGo creates a Loader that returns the provided config directly.
func FromGo(cfg keyly.Config) Loader {
	return &goLoader{cfg: cfg}
}

func (l *goLoader) Load(_ context.Context) (*keyly.Config, error) {
	cfg := l.cfg
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// fileConfig mirrors keyly.Config for JSON and YAML deserialization.
type fileConfig struct {
	Source string        `json:"source" yaml:"source"`
	Keys   []fileKeyFile `json:"keys" yaml:"keys"`
}

type fileKeyFile struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Source string `json:"source" yaml:"source"`
}

func (fc fileConfig) toConfig() keyly.Config {
	cfg := keyly.Config{Source: keyly.Source(fc.Source)}
	for _, k := range fc.Keys {
		cfg.Keys = append(cfg.Keys, keyly.KeyFile{
			Name:   k.Name,
			Path:   k.Path,
			Source: keyly.Source(k.Source),
		})
	}
	return cfg
}

// jsonLoader loads config from a JSON file.
type jsonLoader struct {
	path string
}

// FromJSONFile creates a Loader that reads config from a JSON file.
func FromJSONFile(path string) Loader {
	return &jsonLoader{path: path}
}

func (l *jsonLoader) Load(_ context.Context) (*keyly.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read json config: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse json config: %w", err)
	}
	cfg := fc.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// yamlLoader loads config from a YAML file.
type yamlLoader struct {
	path string
}

// FromYAMLFile creates a Loader that reads config from a YAML file.
func FromYAMLFile(path string) Loader {
	return &yamlLoader{path: path}
}

func (l *yamlLoader) Load(_ context.Context) (*keyly.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read yaml config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}
	cfg := fc.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// luaLoader loads config from a Lua file.
type luaLoader struct {
	path string
}

// FromLuaFile creates a Loader that reads config from a Lua file.
func FromLuaFile(path string) Loader {
	return &luaLoader{path: path}
}

func (l *luaLoader) Load(_ context.Context) (*keyly.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read lua config file: %w", err)
	}
	return LoadLuaString(string(data))
}

// LoadLuaString parses a Lua config string and returns a keyly.Config.
// Exported for testing convenience.
func LoadLuaString(script string) (*keyly.Config, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	// Only open safe libs for config parsing
	for _, pair := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(pair.fn))
		L.Push(lua.LString(pair.name))
		L.Call(1, 0)
	}
	// Remove dangerous functions
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	L.SetGlobal("load", lua.LNil)
	L.SetGlobal("loadstring", lua.LNil)

	if err := L.DoString(script); err != nil {
		return nil, fmt.Errorf("lua config execution: %w", err)
	}

	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua config must return a table, got %s", ret.Type().String())
	}

	cfg := luaTableToConfig(tbl)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func luaTableToConfig(tbl *lua.LTable) *keyly.Config {
	cfg := &keyly.Config{}
	cfg.Source = keyly.Source(getStringField(tbl, "source"))

	keysTbl := getTableField(tbl, "keys")
	if keysTbl != nil {
		keysTbl.ForEach(func(_ lua.LValue, val lua.LValue) {
			entry, ok := val.(*lua.LTable)
			if !ok {
				return
			}
			cfg.Keys = append(cfg.Keys, keyly.KeyFile{
				Name:   getStringField(entry, "name"),
				Path:   getStringField(entry, "path"),
				Source: keyly.Source(getStringField(entry, "source")),
			})
		})
	}

	return cfg
}

// Lua table helper functions

func getStringField(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getTableField(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}
