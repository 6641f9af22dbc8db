package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// envPrefix starts every override variable: BACKDROP_<SECTION>_<KEY>
const envPrefix = "BACKDROP_"

// loadDotEnv populates the environment from ./.env without overriding variables already set
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// applyEnv overrides scalar fields of each config section from the environment
// PORT, when set, replaces the preview listen port
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	root := reflect.ValueOf(cfg).Elem()
	rt := root.Type()

	for i := range rt.NumField() {
		section := root.Field(i)
		if section.Kind() != reflect.Struct {
			continue
		}
		sectionName := tagName(rt.Field(i))

		st := section.Type()
		for j := range st.NumField() {
			field := st.Field(j)
			if !field.IsExported() || !isScalar(field.Type.Kind()) {
				continue
			}
			name := envPrefix + strings.ToUpper(sectionName+"_"+tagName(field))
			raw, ok := lookup(name)
			if !ok {
				continue
			}
			if err := setScalar(section.Field(j), raw); err != nil {
				return fmt.Errorf("env %s: %w", name, err)
			}
		}
	}

	if port, ok := lookup("PORT"); ok && port != "" {
		cfg.Preview.Addr = ":" + port
	}
	return nil
}

func tagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

// isScalar reports whether k can be set from one environment string
// Ranges, lists and maps are only read from the config file
func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// setScalar parses raw into v
func setScalar(v reflect.Value, raw string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
