package domain

import "fmt"

// Axis is the sub-score a question contributes to.
type Axis string

const (
	AxisAnxiety   Axis = "anxiety"
	AxisAvoidance Axis = "avoidance"
)

const (
	// MinAnswer and MaxAnswer bound the Likert scale.
	MinAnswer = 1
	MaxAnswer = 5
	// DefaultAnswer is used for questions the respondent skipped.
	DefaultAnswer = 3
)

// Question is one Likert statement of the quiz.
type Question struct {
	ID   string
	Text string
	Axis Axis
}

// Answers maps a question ID to the selected Likert value.
type Answers map[string]int

// Questions is the fixed quiz catalog, in presentation order.
var Questions = []Question{
	{ID: "a1", Axis: AxisAnxiety, Text: "💖 (카톡 읽씹) 연인의 카톡 답장이 1시간 이상 늦어지면, '혹시 내가 뭐 잘못했나?' 하는 생각이 스멀스멀 올라온다."},
	{ID: "b1", Axis: AxisAvoidance, Text: "🌵 (나만의 시간) 아무리 사랑하는 사이라도, 주말 내내 꼭 붙어있기보다 나만의 시간이 반드시 필요하다."},
	{ID: "a2", Axis: AxisAnxiety, Text: "💖 (애정 확인) 나는 연인에게 \"사랑해\" 같은 애정 표현을 자주 들어야 마음이 놓인다."},
	{ID: "b2", Axis: AxisAvoidance, Text: "🌵 (혼자 해결) 힘든 일이 생겼을 때, 연인에게 털어놓기보다 일단 혼자 해결하는 게 편하다."},
	{ID: "a3", Axis: AxisAnxiety, Text: "💖 (나 없이?) 연인이 나 없이 친구들과 신나게 놀고 있으면, 나도 모르게 살짝 서운하다."},
	{ID: "b3", Axis: AxisAvoidance, Text: "🌵 (비밀의 방) 나의 모든 것을 100% 다 오픈하는 것은 좀 부담스럽다."},
	{ID: "a4", Axis: AxisAnxiety, Text: "💖 (상상의 나래) 가끔 '이 사람이 갑자기 날 떠나면 어떡하지?' 하는 상상을 하곤 한다."},
	{ID: "b4", Axis: AxisAvoidance, Text: "🌵 (독립 선언) 나는 '독립적이고 멋진 사람'으로 보이는 것이 더 중요하다."},
}

// Score sums answers per axis over the whole catalog. Missing answers count
// as DefaultAnswer, so both counts always equal the number of catalog
// questions on that axis.
func Score(questions []Question, answers Answers) (SubmissionInput, error) {
	known := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}
	for id, value := range answers {
		if _, ok := known[id]; !ok {
			return SubmissionInput{}, &ValidationError{Field: "answers", Reason: fmt.Sprintf("unknown question %q", id)}
		}
		if value < MinAnswer || value > MaxAnswer {
			return SubmissionInput{}, &ValidationError{
				Field:  "answers." + id,
				Reason: fmt.Sprintf("must be between %d and %d", MinAnswer, MaxAnswer),
			}
		}
	}

	var in SubmissionInput
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			value = DefaultAnswer
		}
		switch q.Axis {
		case AxisAnxiety:
			in.AnxietyScore += float64(value)
			in.AnxietyCount++
		case AxisAvoidance:
			in.AvoidanceScore += float64(value)
			in.AvoidanceCount++
		}
	}
	return in, nil
}
