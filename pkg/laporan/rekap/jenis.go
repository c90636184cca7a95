package rekap

import (
	"strings"

	"simpupuk/pkg/laporan/types"
)

// JenisKanonik maps a free-text jenis pupuk string onto one of the nine
// canonical buckets. Matching is case-insensitive; every NPK formulation
// ("NPK 12.12.17.2", "NPK 13.6.27.4", ...) collapses into the NPK bucket.
// Unrecognized strings also land in NPK: the field data is dirty and the
// reports must not lose mass over a typo.
func JenisKanonik(s string) types.Jenis {
	j := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(j, "NPK"):
		return types.JenisNPK
	case j == "UREA":
		return types.JenisUrea
	case j == "TSP":
		return types.JenisTSP
	case j == "MOP":
		return types.JenisMOP
	case j == "RP":
		return types.JenisRP
	case strings.Contains(j, "DOLOM"):
		return types.JenisDolomit
	case strings.Contains(j, "BORATE"):
		return types.JenisBorate
	case strings.Contains(j, "CUSO4"):
		return types.JenisCuSO4
	case strings.Contains(j, "ZNSO4"):
		return types.JenisZnSO4
	default:
		return types.JenisNPK
	}
}

// JenisTerpilih resolves a filter selector against the canonical buckets.
// Unlike JenisKanonik it matches the bucket names exactly (case-insensitive):
// a selector is a chosen enum value, not dirty field data, so an unknown
// value means "match nothing" rather than the NPK fallback.
func JenisTerpilih(s string) (types.Jenis, bool) {
	up := types.Jenis(strings.ToUpper(strings.TrimSpace(s)))
	for _, j := range types.SemuaJenis {
		if j == up {
			return j, true
		}
	}
	return "", false
}
