package constants

// Sector tags partition content on the client side only; every collection is
// stored and delivered globally ordered, the dashboard filters after delivery.
const (
	SectorAcademic = "academic"
	SectorQirat    = "qirat"
	SectorCharity  = "charity"
	SectorDawa     = "dawa"
)

var AllSectors = []string{
	SectorAcademic,
	SectorQirat,
	SectorCharity,
	SectorDawa,
}

func IsValidSector(s string) bool {
	for _, v := range AllSectors {
		if v == s {
			return true
		}
	}
	return false
}
