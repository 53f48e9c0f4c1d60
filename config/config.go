package config // CLI configuration file

import (
	"fmt"
	"strconv"
)

// Tool + "key=value" overrides to allow specific callings
type Options struct {
	Tool   string
	Params map[string]string
}

func ParseArgs(args []string) Options {
	opts := Options{Params: make(map[string]string)}
	if len(args) > 0 {
		opts.Tool = args[0]
	}
	if len(args) < 2 {
		return opts
	}
	for _, arg := range args[1:] {
		kv := splitOption(arg)
		opts.Params[kv[0]] = kv[1]
	}
	return opts
}

// String returns the override for key, or def when it was not given
func (o Options) String(key, def string) string {
	if v, ok := o.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// Int is String for integer options.
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o.Params[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option %s: %w", key, err)
	}
	return n, nil
}

// Unknown lists keys that are not in allowed.
func (o Options) Unknown(allowed ...string) []string {
	known := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		known[k] = true
	}
	var unknown []string
	for k := range o.Params {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

//
func splitOption(arg string) [2]string {
	var kv [2]string
	for i, ch := range arg {
		if ch == '=' {
			kv[0] = arg[:i]
			kv[1] = arg[i+1:]
			return kv
		}
	}
	kv[0] = arg
	kv[1] = ""
	return kv
}
