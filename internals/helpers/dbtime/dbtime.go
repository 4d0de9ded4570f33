package dbtime

import (
	"log"
	"strings"
	"sync"
	"time"

	"tahfidzku_backend/internals/configs"
)

const dateLayout = "2006-01-02"

var (
	appLocOnce sync.Once
	appLoc     *time.Location
)

// AppLocation: timezone kalender institusi.
// 1) ENV APP_TIMEZONE (mis. "Asia/Jakarta")
// 2) Fallback: Asia/Jakarta
// 3) Fallback terakhir: zona tetap WIB (UTC+7) kalau tzdata tidak tersedia
func AppLocation() *time.Location {
	appLocOnce.Do(func() {
		name := strings.TrimSpace(configs.GetEnv("APP_TIMEZONE", "Asia/Jakarta"))
		if loc, err := time.LoadLocation(name); err == nil {
			appLoc = loc
			return
		}
		log.Printf("⚠️ Timezone %q tidak bisa dimuat, fallback ke WIB (UTC+7)", name)
		appLoc = time.FixedZone("WIB", 7*3600)
	})
	return appLoc
}

// ParseDate: parse tanggal kalender "YYYY-MM-DD" di timezone institusi.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), AppLocation())
}

// FormatDate: format ke "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// AtStartOfDay: buang komponen jam, pertahankan tanggal kalender di loc.
func AtStartOfDay(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
