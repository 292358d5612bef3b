// Package config reads YAML documents and exposes their values through typed
// getters. Keys are dot-separated paths into nested mappings.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

var (
	ErrNoKey     = errors.New("no such key")
	ErrWrongType = errors.New("wrong value type")
)

type Properties struct {
	values map[string]interface{}
}

// Empty returns properties without any key.
func Empty() *Properties {
	return &Properties{values: map[string]interface{}{}}
}

func Parse(data []byte) (*Properties, error) {
	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if values == nil {
		values = map[string]interface{}{}
	}

	return &Properties{values: values}, nil
}

func Load(path string) (*Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, xerrors.WithStackTrace(fmt.Errorf("parse %q: %w", path, err))
	}

	return p, nil
}

func (p *Properties) lookup(key string) (interface{}, error) {
	var node interface{} = p.values
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, xerrors.WithStackTrace(fmt.Errorf("%q: %w", key, ErrNoKey))
		}
		if node, ok = m[part]; !ok {
			return nil, xerrors.WithStackTrace(fmt.Errorf("%q: %w", key, ErrNoKey))
		}
	}

	return node, nil
}

func wrongType(key string, v interface{}, want string) error {
	return xerrors.WithStackTrace(fmt.Errorf("%q is %T, not %s: %w", key, v, want, ErrWrongType), xerrors.WithSkipDepth(1))
}

func (p *Properties) Has(key string) bool {
	_, err := p.lookup(key)

	return err == nil
}

func (p *Properties) String(key string) (string, error) {
	v, err := p.lookup(key)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case string:
		return v, nil
	case int64, uint64, float64, bool:
		return fmt.Sprint(v), nil
	default:
		return "", wrongType(key, v, "string")
	}
}

func (p *Properties) StringOr(key, def string) string {
	if s, err := p.String(key); err == nil {
		return s
	}

	return def
}

func (p *Properties) Int(key string) (int, error) {
	v, err := p.lookup(key)
	if err != nil {
		return 0, err
	}
	i, ok := toInt(v)
	if !ok {
		return 0, wrongType(key, v, "int")
	}

	return i, nil
}

func (p *Properties) IntOr(key string, def int) int {
	if i, err := p.Int(key); err == nil {
		return i
	}

	return def
}

func (p *Properties) Bool(key string) (bool, error) {
	v, err := p.lookup(key)
	if err != nil {
		return false, err
	}
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, wrongType(key, v, "bool")
		}

		return b, nil
	default:
		return false, wrongType(key, v, "bool")
	}
}

func (p *Properties) list(key string) ([]interface{}, error) {
	v, err := p.lookup(key)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]interface{})
	if !ok {
		return nil, wrongType(key, v, "list")
	}

	return l, nil
}

func (p *Properties) Strings(key string) ([]string, error) {
	l, err := p.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(l))
	for i, v := range l {
		s, ok := scalar(v)
		if !ok {
			return nil, wrongType(key+"."+strconv.Itoa(i), v, "scalar")
		}
		out = append(out, s)
	}

	return out, nil
}

func (p *Properties) Ints(key string) ([]int, error) {
	l, err := p.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(l))
	for i, v := range l {
		n, ok := toInt(v)
		if !ok {
			return nil, wrongType(key+"."+strconv.Itoa(i), v, "int")
		}
		out = append(out, n)
	}

	return out, nil
}

// StringLists reads a list of lists of scalars.
func (p *Properties) StringLists(key string) ([][]string, error) {
	l, err := p.list(key)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(l))
	for i, v := range l {
		inner, ok := v.([]interface{})
		if !ok {
			return nil, wrongType(key+"."+strconv.Itoa(i), v, "list")
		}
		items := make([]string, 0, len(inner))
		for j, item := range inner {
			s, ok := scalar(item)
			if !ok {
				return nil, wrongType(key+"."+strconv.Itoa(i)+"."+strconv.Itoa(j), item, "scalar")
			}
			items = append(items, s)
		}
		out = append(out, items)
	}

	return out, nil
}

func scalar(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

func toInt(v interface{}) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}

		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}

		return int(v), true
	case string:
		i, err := strconv.Atoi(v)

		return i, err == nil
	default:
		return 0, false
	}
}
