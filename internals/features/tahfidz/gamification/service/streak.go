package service

import (
	"sort"
	"time"
)

// MaxStreak: panjang run terpanjang dari hari kalender berurutan.
// Input boleh berisi duplikat dan tidak terurut — tanggal dinormalkan ke
// hari kalender (komponen jam dibuang), di-dedup, lalu diurutkan.
// Kosong → 0; selain itu minimal 1.
func MaxStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	// Normalisasi ke tengah malam UTC per tanggal kalender supaya selisih
	// hari berurutan persis 24 jam (bebas DST/zona).
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	current, max := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > max {
			max = current
		}
	}
	return max
}
