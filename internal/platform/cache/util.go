package cache

import (
	"fmt"
	"time"
)

// TimeUntilNextRefresh は now から次の hour 時（zone のローカル時刻）までの期間を返します。
// 当日の hour 時を既に過ぎている場合は翌日の hour 時までの期間になります。
func TimeUntilNextRefresh(now time.Time, hour int, loc *time.Location) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// RefreshTTL は設定値から Redis の TTL を決めます。ttl > 0 ならそのまま使い、
// 0 の場合は次のデータ更新時刻（zone の hour 時）までとします。
func RefreshTTL(ttl time.Duration, hour int, zone string) (time.Duration, error) {
	if ttl > 0 {
		return ttl, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, fmt.Errorf("load refresh zone %q: %w", zone, err)
	}
	return TimeUntilNextRefresh(time.Now(), hour, loc), nil
}
