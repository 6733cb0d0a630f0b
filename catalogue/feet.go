package catalogue

// footNames and footPatterns are parallel tables of the canonical feet
// (arkān/rukn) tiled by the meters in tables.go, table order breaking
// ties when two feet of equal length could match the same position.
var (
	footNames = []string{
		"مفعول",
		"فاعلاتن",
		"مفاعیلن",
		"فعولن",
		"مستفعلن",
		"فاعلن",
		"متفاعلن",
		"فاع",
	}

	footPatterns = []string{
		"=-==",
		"=-=-",
		"-===",
		"-==",
		"=--=",
		"=-=",
		"--=-=",
		"=-",
	}
)

// Foot aliases used to compose meterPatterns in tables.go; not part of
// the exported table, just local shorthand for readability.
const (
	rMafulu     = "=-=="
	rFailatun   = "=-=-"
	rMafailun   = "-==="
	rFailun     = "-=="
	rMustafilun = "=--="
	rFailn      = "=-="
	rMutafailun = "--=-="
	rFa         = "=-"
)

// specialNames marks the Hindi/Zamzama family, for which the secondary
// PatternTree structure (spec §4.6) is not implemented in this build;
// lines that only scan under one of these fall through to "unmatched".
// See DESIGN.md for the rationale. Hand-maintained alongside the
// generated meterNames table, the way the teacher's codec package
// hand-writes accessors around its generated vocab maps.
var specialNames = map[string]bool{
	"بحر ہندی":  true,
	"بحر زمزمہ": true,
}

// IsSpecial reports whether name belongs to the Hindi/Zamzama family for
// which PatternTree handling is not implemented.
func IsSpecial(name string) bool { return specialNames[name] }
