package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/ydb-platform/ydb-go-seqview/internal/xstring"
)

type recordOptions struct {
	packagePath bool
	fileName    bool
	line        bool
	lambdas     bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

type frame struct {
	function string
	file     string
	line     int
}

func caller(depth int) (f frame) {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return f
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.function = strings.ReplaceAll(fn.Name(), "[...]", "")
	}
	if i := strings.LastIndexByte(file, '/'); i > -1 {
		file = file[i+1:]
	}
	f.file = file
	f.line = line

	return f
}

// Record describes the caller at the given depth as
// `pkg/path/name.Func(file.go:line)`.
func Record(depth int, opts ...recordOption) string {
	options := recordOptions{
		packagePath: true,
		fileName:    true,
		line:        true,
		lambdas:     true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return caller(depth + 1).format(options)
}

func (f frame) format(options recordOptions) string {
	name := f.function
	if !options.packagePath {
		if i := strings.LastIndexByte(name, '/'); i > -1 {
			name = name[i+1:]
		}
	}
	if !options.lambdas {
		name = trimLambdas(name)
	}

	buffer := xstring.Buffer()
	defer buffer.Free()

	buffer.WriteString(name)
	if options.fileName && f.file != "" {
		buffer.WriteByte('(')
		buffer.WriteString(f.file)
		if options.line {
			buffer.WriteByte(':')
			buffer.WriteString(strconv.Itoa(f.line))
		}
		buffer.WriteByte(')')
	}

	return buffer.String()
}

// trimLambdas drops trailing `.funcN` segments of closures.
func trimLambdas(name string) string {
	for {
		i := strings.LastIndexByte(name, '.')
		if i < 0 || !strings.HasPrefix(name[i+1:], "func") {
			return name
		}
		name = name[:i]
	}
}
