// Package semver implements SemVer 2.0.0 style version resolution for prompt versions.
//
// 버전 형식: MAJOR.MINOR.PATCH[-LABEL[.NUMBER]]
//
//	1.0.0, 1.2.3-SNAPSHOT, 2.0.0-M.1, 1.0.0-RC.2
//
// 파싱 불가능한 현재 버전은 에러가 아니라 "버전 없음"으로 취급하여 1.0.0부터 다시 시작합니다.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bump - 버전 증가 단위
type Bump int

const (
	BumpNone Bump = iota
	BumpMajor
	BumpMinor
	BumpPatch
)

// PreLabel - pre-release 라벨
type PreLabel int

const (
	LabelNone PreLabel = iota
	LabelSnapshot
	LabelMilestone
	LabelRC
	LabelStable
)

// 문자열 alias 매핑 (case-insensitive)
var bumpAliases = map[string]Bump{
	"major": BumpMajor,
	"minor": BumpMinor,
	"patch": BumpPatch,
}

var labelAliases = map[string]PreLabel{
	"snapshot":          LabelSnapshot,
	"milestone":         LabelMilestone,
	"m":                 LabelMilestone,
	"rc":                LabelRC,
	"release_candidate": LabelRC,
	"stable":            LabelStable,
	"":                  LabelStable, // 빈 문자열 = stable
}

// ParseBump - 문자열을 Bump로 변환. 매칭 실패 시 (BumpNone, false).
func ParseBump(s string) (Bump, bool) {
	b, ok := bumpAliases[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

// ParseLabel - 문자열을 PreLabel로 변환. 매칭 실패 시 (LabelNone, false).
func ParseLabel(s string) (PreLabel, bool) {
	l, ok := labelAliases[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// suffix - 버전 문자열에 붙는 라벨 표기. MILESTONE은 "M"으로 축약.
func (l PreLabel) suffix() string {
	switch l {
	case LabelSnapshot:
		return "SNAPSHOT"
	case LabelMilestone:
		return "M"
	case LabelRC:
		return "RC"
	default:
		return ""
	}
}

func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return "none"
	}
}

// Version - 파싱된 semantic version
type Version struct {
	Major     int
	Minor     int
	Patch     int
	PreLabel  string // 원본 라벨 토큰 (예: "RC", "SNAPSHOT"), 없으면 ""
	PreNumber int    // 라벨 번호, 없으면 0
	HasNumber bool
}

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([A-Za-z]+)(?:\.(\d+))?)?$`)

// Parse - 버전 문자열 파싱. 형식이 맞지 않으면 (zero, false).
func Parse(s string) (Version, bool) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}

	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	v := Version{Major: major, Minor: minor, Patch: patch, PreLabel: m[4]}
	if m[5] != "" {
		v.PreNumber, _ = strconv.Atoi(m[5])
		v.HasNumber = true
	}
	return v, true
}

// IsPreRelease - 라벨이 붙어 있는 버전인지 여부
func (v Version) IsPreRelease() bool {
	return v.PreLabel != ""
}

// Format - 버전 컴포넌트를 문자열로 조립
//
//	stable 또는 라벨 없음: "1.2.3"
//	라벨만: "1.2.3-SNAPSHOT"
//	라벨 + 번호: "1.2.3-RC.2"
func Format(major, minor, patch int, label PreLabel, preNumber *int) string {
	base := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	if label == LabelNone || label == LabelStable {
		return base
	}
	if preNumber != nil {
		return fmt.Sprintf("%s-%s.%d", base, label.suffix(), *preNumber)
	}
	return base + "-" + label.suffix()
}

// Next - 다음 버전 계산
//
// 규칙:
//   - current가 빈 문자열(이전 버전 없음)이면 bump와 무관하게 1.0.0 기반
//   - current가 파싱 불가능하면 동일하게 1.0.0부터 재시작 (에러 아님)
//   - PATCH + STABLE 조합으로 pre-release를 승격할 때는 숫자를 올리지 않음
//     (예: "1.0.0-RC.2" -> "1.0.0")
func Next(current string, bump Bump, label PreLabel, preNumber *int) string {
	major, minor, patch := 1, 0, 0

	if current != "" {
		if parsed, ok := Parse(current); ok {
			major = parsed.Major
			minor = parsed.Minor
			patch = parsed.Patch

			switch {
			case label == LabelStable && parsed.IsPreRelease() && bump == BumpPatch:
				// pre-release -> stable 승격: 버전 유지
			case bump == BumpMajor:
				major++
				minor = 0
				patch = 0
			case bump == BumpMinor:
				minor++
				patch = 0
			case bump == BumpPatch:
				patch++
			}
		}
	}

	return Format(major, minor, patch, label, preNumber)
}
