package version

const (
	Major = "1"
	Minor = "2"
	Patch = "0"

	Package = "ydb-go-seqview"
)

const (
	Version     = Major + "." + Minor + "." + Patch
	FullVersion = Package + "/" + Version
)
