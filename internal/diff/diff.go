// Package diff computes word-level similarity between two prompt versions.
//
// 텍스트를 공백 기준 토큰으로 나누고 LCS 정렬로 비교합니다.
// 유사도 = 2 * (공통 토큰 수) / (전체 토큰 수), 둘 다 빈 텍스트면 1.0.
//
// 세그먼트 텍스트는 원본 문자열의 구간을 그대로 잘라낸 것입니다. 각 세그먼트는
// 직전 토큰 이후의 공백부터 자기 마지막 토큰까지를 포함하므로, unchanged/added
// 세그먼트를 이어붙이면 new 입력이 공백까지 그대로 복원됩니다.
package diff

import (
	"fmt"
	"unicode"
)

// SegmentType - diff 세그먼트 태그
type SegmentType string

const (
	SegmentUnchanged SegmentType = "unchanged"
	SegmentAdded     SegmentType = "added"
	SegmentRemoved   SegmentType = "removed"
)

// Segment - 연속된 토큰 구간 하나
type Segment struct {
	Type SegmentType `json:"type"`
	Text string      `json:"text"`
}

// Result - 두 버전의 (system, user) 텍스트 쌍 비교 결과
type Result struct {
	SystemSimilarity float64   `json:"system_similarity"`
	UserSimilarity   float64   `json:"user_similarity"`
	TotalSimilarity  float64   `json:"total_similarity"` // system/user 유사도의 단순 평균
	Summary          string    `json:"summary"`
	SystemSegments   []Segment `json:"system_segments"`
	UserSegments     []Segment `json:"user_segments"`
}

// Compute - old/new 텍스트 쌍의 유사도와 세그먼트 계산
func Compute(oldSystem, oldUser, newSystem, newUser string) Result {
	sysSim, sysSegs := diffField(oldSystem, newSystem)
	userSim, userSegs := diffField(oldUser, newUser)

	total := (sysSim + userSim) / 2

	return Result{
		SystemSimilarity: sysSim,
		UserSimilarity:   userSim,
		TotalSimilarity:  total,
		Summary:          summarize(total, oldSystem == "" && oldUser == ""),
		SystemSegments:   sysSegs,
		UserSegments:     userSegs,
	}
}

// token - 원본 문자열 내 위치를 기억하는 토큰
type token struct {
	text  string
	start int // 바이트 오프셋
	end   int
}

// tokenize - strings.Fields와 같은 분할 규칙, 오프셋 포함
func tokenize(s string) []token {
	var tokens []token
	start := -1
	for idx, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{text: s[start:idx], start: start, end: idx})
				start = -1
			}
		} else if start < 0 {
			start = idx
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: s[start:], start: start, end: len(s)})
	}
	return tokens
}

// diffField - 필드 하나(system 또는 user)의 유사도와 세그먼트 계산
func diffField(oldText, newText string) (float64, []Segment) {
	oldTokens := tokenize(oldText)
	newTokens := tokenize(newText)

	if len(oldTokens) == 0 && len(newTokens) == 0 {
		if newText == "" {
			return 1.0, nil
		}
		// 공백뿐인 텍스트도 new 복원을 위해 세그먼트로 내보냄
		typ := SegmentAdded
		if oldText == newText {
			typ = SegmentUnchanged
		}
		return 1.0, []Segment{{Type: typ, Text: newText}}
	}

	matches, runs := align(oldTokens, newTokens)
	ratio := 2 * float64(matches) / float64(len(oldTokens)+len(newTokens))
	return ratio, render(oldText, newText, oldTokens, newTokens, runs)
}

// opRun - 같은 종류의 연속 토큰 구간. removed는 old, added는 new 범위만 사용
type opRun struct {
	typ          SegmentType
	oldLo, oldHi int
	newLo, newHi int
}

// align - LCS 기반 토큰 정렬
//
// dp[i][j] = oldTokens[i:]와 newTokens[j:]의 LCS 길이.
// 앞에서부터 걸어가며 equal/removed/added 구간을 만들고 연속 구간은 병합합니다.
func align(oldTokens, newTokens []token) (int, []opRun) {
	n, m := len(oldTokens), len(newTokens)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldTokens[i].text == newTokens[j].text {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var runs []opRun
	appendRun := func(run opRun) {
		if run.oldHi == run.oldLo && run.newHi == run.newLo {
			return
		}
		if len(runs) > 0 && runs[len(runs)-1].typ == run.typ {
			runs[len(runs)-1].oldHi = run.oldHi
			runs[len(runs)-1].newHi = run.newHi
			return
		}
		runs = append(runs, run)
	}

	matches := 0
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldTokens[i].text == newTokens[j].text:
			oldLo, newLo := i, j
			for i < n && j < m && oldTokens[i].text == newTokens[j].text {
				i++
				j++
			}
			matches += i - oldLo
			appendRun(opRun{typ: SegmentUnchanged, oldLo: oldLo, oldHi: i, newLo: newLo, newHi: j})
		case dp[i+1][j] >= dp[i][j+1]:
			oldLo := i
			for i < n && j < m && oldTokens[i].text != newTokens[j].text && dp[i+1][j] >= dp[i][j+1] {
				i++
			}
			appendRun(opRun{typ: SegmentRemoved, oldLo: oldLo, oldHi: i, newLo: j, newHi: j})
		default:
			newLo := j
			for i < n && j < m && oldTokens[i].text != newTokens[j].text && dp[i+1][j] < dp[i][j+1] {
				j++
			}
			appendRun(opRun{typ: SegmentAdded, oldLo: i, oldHi: i, newLo: newLo, newHi: j})
		}
	}
	appendRun(opRun{typ: SegmentRemoved, oldLo: i, oldHi: n, newLo: j, newHi: j})
	appendRun(opRun{typ: SegmentAdded, oldLo: i, oldHi: i, newLo: j, newHi: m})

	return matches, runs
}

// render - 토큰 구간을 원본 문자열 조각으로 변환
//
// unchanged/added는 new에서, removed는 old에서 잘라내며, 각 조각은 같은 쪽의
// 직전 조각 끝부터 시작합니다. new 끝의 남은 공백은 마지막 new 쪽 세그먼트에
// 붙여 new 복원이 정확해지도록 합니다.
func render(oldText, newText string, oldTokens, newTokens []token, runs []opRun) []Segment {
	segments := make([]Segment, 0, len(runs))
	oldCursor, newCursor := 0, 0
	lastNewSide := -1

	for _, run := range runs {
		var text string
		switch run.typ {
		case SegmentRemoved:
			end := oldTokens[run.oldHi-1].end
			text = oldText[oldCursor:end]
			oldCursor = end
		default:
			end := newTokens[run.newHi-1].end
			text = newText[newCursor:end]
			newCursor = end
			if run.typ == SegmentUnchanged {
				oldCursor = oldTokens[run.oldHi-1].end
			}
			lastNewSide = len(segments)
		}
		segments = append(segments, Segment{Type: run.typ, Text: text})
	}

	if newCursor < len(newText) {
		trailing := newText[newCursor:]
		if lastNewSide >= 0 {
			segments[lastNewSide].Text += trailing
		} else {
			segments = append(segments, Segment{Type: SegmentAdded, Text: trailing})
		}
	}
	return segments
}

// summarize - 변경 정도를 사람이 읽을 수 있는 문장으로 변환
func summarize(total float64, oldEmpty bool) string {
	switch {
	case oldEmpty:
		return "initial content"
	case total >= 1.0:
		return "no changes"
	case total >= 0.9:
		return fmt.Sprintf("minor changes (%.1f%% similar)", total*100)
	case total >= 0.5:
		return fmt.Sprintf("moderate changes (%.1f%% similar)", total*100)
	default:
		return fmt.Sprintf("major rewrite (%.1f%% similar)", total*100)
	}
}
