// Package gitmeta reads git metadata from the working tree.
//
// 버전 저장 시 현재 커밋 해시를 함께 기록해 두면 어떤 코드 상태에서
// 프롬프트가 바뀌었는지 추적할 수 있습니다. git 저장소가 아니거나
// git이 설치되어 있지 않으면 조용히 빈 값을 반환합니다.
package gitmeta

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// CurrentCommit - HEAD 커밋 해시 조회. 저장소가 아니면 ("", false)
func CurrentCommit(ctx context.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", false
	}

	commit := strings.TrimSpace(string(out))
	if commit == "" {
		return "", false
	}
	return commit, true
}

// CurrentBranch - 현재 브랜치 이름 조회. detached HEAD면 "HEAD"가 반환됨
func CurrentBranch(ctx context.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return "", false
	}

	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return "", false
	}
	return branch, true
}
