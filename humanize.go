package bjtime

import (
	"fmt"
	"time"
)

// Humanize renders the distance between t and now as a Chinese relative
// description. The 前 ("ago") phrasing is kept even when t lies in the
// future; callers render the result verbatim.
func (s *Service) Humanize(t time.Time) string {
	d := s.Now().Sub(t)
	if d < 0 {
		d = -d
	}

	total := int64(d / time.Second)
	days := total / 86400
	rem := total % 86400

	switch {
	case days > 7:
		return t.In(s.loc).Format(LayoutDate)
	case days > 1:
		return fmt.Sprintf("%d天前", days)
	case days == 1:
		return "昨天"
	case rem >= 3600:
		return fmt.Sprintf("%d小时前", rem/3600)
	case rem >= 60:
		return fmt.Sprintf("%d分钟前", rem/60)
	default:
		return "刚刚"
	}
}
