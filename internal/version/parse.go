package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

type version struct {
	Major  uint64
	Minor  uint64
	Patch  uint64
	Suffix string
}

func (lhs version) compare(rhs version) int {
	for _, pair := range [][2]uint64{
		{lhs.Major, rhs.Major},
		{lhs.Minor, rhs.Minor},
		{lhs.Patch, rhs.Patch},
	} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}

	return strings.Compare(lhs.Suffix, rhs.Suffix)
}

// Lt compare lhs and rhs as (lhs < rhs)
func Lt(lhs, rhs string) bool {
	v1, err := parse(lhs)
	if err != nil {
		return false
	}
	v2, err := parse(rhs)
	if err != nil {
		return false
	}

	return v1.compare(v2) < 0
}

// Gte compare lhs and rhs as (lhs >= rhs)
func Gte(lhs, rhs string) bool {
	v1, err := parse(lhs)
	if err != nil {
		return false
	}
	v2, err := parse(rhs)
	if err != nil {
		return false
	}

	return v1.compare(v2) >= 0
}

var operators = []struct {
	prefix string
	ok     func(cmp int) bool
}{
	{">=", func(cmp int) bool { return cmp >= 0 }},
	{"<=", func(cmp int) bool { return cmp <= 0 }},
	{"!=", func(cmp int) bool { return cmp != 0 }},
	{">", func(cmp int) bool { return cmp > 0 }},
	{"<", func(cmp int) bool { return cmp < 0 }},
	{"=", func(cmp int) bool { return cmp == 0 }},
}

// Satisfies checks current against a constraint such as ">=1.2.0" or "<2".
// A constraint without an operator means equality.
func Satisfies(current, constraint string) (bool, error) {
	constraint = strings.TrimSpace(constraint)
	ok := func(cmp int) bool { return cmp == 0 }
	for _, op := range operators {
		if strings.HasPrefix(constraint, op.prefix) {
			constraint = strings.TrimSpace(constraint[len(op.prefix):])
			ok = op.ok

			break
		}
	}
	want, err := parse(constraint)
	if err != nil {
		return false, xerrors.WithStackTrace(err)
	}
	have, err := parse(current)
	if err != nil {
		return false, xerrors.WithStackTrace(err)
	}

	return ok(have.compare(want)), nil
}

//nolint:gomnd
func parse(s string) (v version, err error) {
	s = strings.TrimPrefix(s, "v")
	ss := strings.SplitN(s, "-", 2)
	if len(ss) == 2 {
		v.Suffix = ss[1]
	}
	if ss[0] == "" {
		return version{}, xerrors.WithStackTrace(fmt.Errorf("empty version %q", s))
	}
	parts := strings.SplitN(ss[0], ".", 3)
	for i, dst := range []*uint64{&v.Major, &v.Minor, &v.Patch} {
		if i >= len(parts) {
			break
		}
		*dst, err = strconv.ParseUint(parts[i], 10, 64)
		if err != nil {
			return version{}, xerrors.WithStackTrace(err)
		}
	}

	return v, nil
}
