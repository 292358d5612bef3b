package seqview

import "github.com/ydb-platform/ydb-go-seqview/internal/version"

// Version is the library version with the package name, e.g. "ydb-go-seqview/1.2.0"
const Version = version.FullVersion
