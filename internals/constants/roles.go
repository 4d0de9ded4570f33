package constants

// Role dalam klaim JWT (diterbitkan layanan auth terpisah).
const (
	RoleSantri = "santri"
	RoleGuru   = "guru"
	RoleAdmin  = "admin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSantri,
		RoleGuru,
		RoleAdmin,
	}

	// GuruAndAbove: boleh entri data (sesi & evaluasi).
	GuruAndAbove = []string{
		RoleGuru,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
