package engine

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// heatmapDays 요일 라벨 고정
var heatmapDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Heatmap 주차별 기여도 히트맵
type Heatmap struct {
	Weeks  []string `json:"weeks"` // 각 주 월요일의 M/D 라벨
	Days   []string `json:"days"`
	Matrix [][]int  `json:"matrix"` // 주 x 7 점수 행렬
}

// BuildHeatmap 월요일 기준 주차 행렬 생성.
// 파싱할 수 없는 날짜의 로그는 범위 계산에서 제외한다.
func BuildHeatmap(logs []ActivityLog) *Heatmap {
	dateScores := make(map[string]int)
	var minDate, maxDate time.Time

	for _, log := range logs {
		day, err := time.Parse(dateLayout, log.Date)
		if err != nil {
			continue
		}
		score := 0
		for _, p := range log.Participants {
			score += p.ContributionScore
		}
		dateScores[log.Date] += score

		if minDate.IsZero() || day.Before(minDate) {
			minDate = day
		}
		if maxDate.IsZero() || day.After(maxDate) {
			maxDate = day
		}
	}

	if minDate.IsZero() {
		return &Heatmap{Weeks: []string{}, Days: heatmapDays, Matrix: [][]int{}}
	}

	// 시작은 월요일로 당기고 끝은 일요일로 민다
	firstMonday := minDate.AddDate(0, 0, -((int(minDate.Weekday()) + 6) % 7))
	lastSunday := maxDate.AddDate(0, 0, (7-int(maxDate.Weekday()))%7)

	var weeks []string
	var matrix [][]int

	for current := firstMonday; !current.After(lastSunday); {
		weeks = append(weeks, fmt.Sprintf("%d/%d", int(current.Month()), current.Day()))

		row := make([]int, 7)
		for day := 0; day < 7; day++ {
			row[day] = dateScores[current.Format(dateLayout)]
			current = current.AddDate(0, 0, 1)
		}
		matrix = append(matrix, row)
	}

	return &Heatmap{Weeks: weeks, Days: heatmapDays, Matrix: matrix}
}
