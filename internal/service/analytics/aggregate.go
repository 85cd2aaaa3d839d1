package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
	"github.com/heartmarshall/oneonone-backend/internal/service/schedule"
)

// neverMetDays is the elapsed-days sentinel for members without any meeting.
// It ranks them as most urgent in the recommended listing.
const neverMetDays = 9999

const monthLayout = "2006-01"

func monthOf(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// MonthlyActionTrends buckets action items by creation month and,
// independently, by completion month. An item created in month A and
// completed in month B contributes to both buckets. The result is sorted
// by month ascending.
func MonthlyActionTrends(items []domain.ActionItem) []domain.MonthlyActionTrend {
	buckets := map[string]*domain.MonthlyActionTrend{}
	bucket := func(month string) *domain.MonthlyActionTrend {
		b, ok := buckets[month]
		if !ok {
			b = &domain.MonthlyActionTrend{Month: month}
			buckets[month] = b
		}
		return b
	}

	for _, item := range items {
		bucket(monthOf(item.CreatedAt)).Created++
		if item.CompletedAt != nil {
			bucket(monthOf(*item.CompletedAt)).Completed++
		}
	}

	trends := make([]domain.MonthlyActionTrend, 0, len(buckets))
	for _, b := range buckets {
		trends = append(trends, *b)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

// CompletionMetrics computes the average completion time in days and the
// on-time completion rate over completed items only. Items without a due
// date count as on-time. Both metrics are zero when nothing is completed.
func CompletionMetrics(items []domain.ActionItem) (avgDays, onTimeRate float64) {
	var completed, onTime int
	var totalDays float64

	for _, item := range items {
		if item.CompletedAt == nil {
			continue
		}
		completed++
		totalDays += item.CompletedAt.Sub(item.CreatedAt).Hours() / 24
		if item.CompletedOnTime() {
			onTime++
		}
	}

	if completed == 0 {
		return 0, 0
	}
	return totalDays / float64(completed), float64(onTime) / float64(completed) * 100
}

// TopicDistribution counts topics per category over the closed category set,
// in the canonical category order. Categories with zero topics are included.
func TopicDistribution(topics []domain.TopicWithDate) []domain.CategoryCount {
	counts := map[domain.TopicCategory]int{}
	for _, t := range topics {
		counts[t.Topic.Category]++
	}

	dist := make([]domain.CategoryCount, 0, len(domain.TopicCategories()))
	for _, cat := range domain.TopicCategories() {
		dist = append(dist, domain.CategoryCount{Category: cat, Count: counts[cat]})
	}
	return dist
}

// TopicTimeline buckets topic counts per category per meeting month, sorted
// by month ascending and category order within a month. Only non-zero cells
// are emitted.
func TopicTimeline(topics []domain.TopicWithDate) []domain.CategoryMonthCount {
	type cell struct {
		month    string
		category domain.TopicCategory
	}
	counts := map[cell]int{}
	for _, t := range topics {
		counts[cell{month: monthOf(t.MeetingDate), category: t.Topic.Category}]++
	}

	catOrder := map[domain.TopicCategory]int{}
	for i, cat := range domain.TopicCategories() {
		catOrder[cat] = i
	}

	timeline := make([]domain.CategoryMonthCount, 0, len(counts))
	for c, n := range counts {
		timeline = append(timeline, domain.CategoryMonthCount{
			Month:    c.month,
			Category: c.category,
			Count:    n,
		})
	}
	sort.Slice(timeline, func(i, j int) bool {
		if timeline[i].Month != timeline[j].Month {
			return timeline[i].Month < timeline[j].Month
		}
		return catOrder[timeline[i].Category] < catOrder[timeline[j].Category]
	})
	return timeline
}

// MeetingFrequency counts meetings per month, sorted ascending. Months with
// zero meetings are omitted; the caller fills gaps if it needs a dense series.
func MeetingFrequency(rows []domain.MemberMeetingDate) []domain.MonthCount {
	counts := map[string]int{}
	for _, r := range rows {
		counts[monthOf(r.Date)]++
	}

	series := make([]domain.MonthCount, 0, len(counts))
	for month, n := range counts {
		series = append(series, domain.MonthCount{Month: month, Count: n})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// MonthWindow returns the most recent n calendar months ending at now,
// ascending, as YYYY-MM strings.
func MonthWindow(now time.Time, n int) []string {
	u := now.UTC()
	first := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	window := make([]string, 0, n)
	for i := 0; i < n; i++ {
		window = append(window, first.AddDate(0, i, 0).Format(monthLayout))
	}
	return window
}

// Heatmap builds a dense member x month meeting-count grid over the given
// month window. Every cell is present and zero-filled; rows keep the order
// of the members slice.
func Heatmap(members []domain.MemberLastMeeting, rows []domain.MemberMeetingDate, window []string) []domain.HeatmapRow {
	counts := map[uuid.UUID]map[string]int{}
	for _, r := range rows {
		byMonth, ok := counts[r.MemberID]
		if !ok {
			byMonth = map[string]int{}
			counts[r.MemberID] = byMonth
		}
		byMonth[monthOf(r.Date)]++
	}

	grid := make([]domain.HeatmapRow, 0, len(members))
	for _, m := range members {
		row := domain.HeatmapRow{
			MemberID:   m.MemberID,
			MemberName: m.MemberName,
			Cells:      make([]domain.HeatmapCell, 0, len(window)),
		}
		for _, month := range window {
			row.Cells = append(row.Cells, domain.HeatmapCell{
				Month: month,
				Count: counts[m.MemberID][month],
			})
		}
		grid = append(grid, row)
	}
	return grid
}

// RecommendedMeetings ranks every member by days since their last meeting,
// most urgent first. Members that never met carry a large sentinel elapsed
// days and therefore sort to the top.
func RecommendedMeetings(members []domain.MemberLastMeeting, now time.Time) []domain.MemberReminder {
	reminders := make([]domain.MemberReminder, 0, len(members))
	for _, m := range members {
		reminders = append(reminders, buildReminder(m, now))
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysSinceLast > reminders[j].DaysSinceLast
	})
	return reminders
}

// OverdueReminders returns only overdue members, ranked by elapsed days
// descending, with never-met members placed after members whose meetings
// lapsed. The placement deliberately differs from RecommendedMeetings.
func OverdueReminders(members []domain.MemberLastMeeting, now time.Time) []domain.MemberReminder {
	var met, neverMet []domain.MemberReminder
	for _, m := range members {
		r := buildReminder(m, now)
		if !r.Overdue {
			continue
		}
		if m.LastDate == nil {
			neverMet = append(neverMet, r)
		} else {
			met = append(met, r)
		}
	}

	sort.SliceStable(met, func(i, j int) bool {
		return met[i].DaysSinceLast > met[j].DaysSinceLast
	})

	reminders := make([]domain.MemberReminder, 0, len(met)+len(neverMet))
	reminders = append(reminders, met...)
	reminders = append(reminders, neverMet...)
	return reminders
}

func buildReminder(m domain.MemberLastMeeting, now time.Time) domain.MemberReminder {
	next := schedule.NextRecommendedDate(m.LastDate, m.MeetingIntervalDays)

	days := neverMetDays
	if m.LastDate != nil {
		days = schedule.DaysSince(*m.LastDate, now)
	}

	return domain.MemberReminder{
		MemberID:            m.MemberID,
		MemberName:          m.MemberName,
		LastMeetingDate:     m.LastDate,
		NextRecommendedDate: next,
		NextRecommendedText: schedule.FormatNextRecommendedDate(next, now),
		DaysSinceLast:       days,
		Overdue:             schedule.IsOverdue(m.LastDate, m.MeetingIntervalDays, now),
		ScheduledThisWeek:   schedule.IsScheduledThisWeek(m.LastDate, m.MeetingIntervalDays, now),
	}
}
