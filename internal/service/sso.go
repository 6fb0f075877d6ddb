// OIDC SSO 로그인 플로우
//
// 환경변수 (OIDC_* 미설정 시 SSO 비활성):
//   - OIDC_ISSUER_URL, OIDC_CLIENT_ID, OIDC_CLIENT_SECRET, OIDC_REDIRECT_URL

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/prompt-ops/backend/internal/config"
	"golang.org/x/oauth2"
)

const ssoStateTTL = 10 * time.Minute

type SSOService struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
	oauthCfg oauth2.Config

	// state -> 발급 시각. 콜백에서 1회 검증 후 삭제
	states sync.Map
}

type SSOIdentity struct {
	Subject string
	Email   string
	Name    string
}

// NewSSOService - OIDC provider 탐색 및 설정. 미설정이면 (nil, nil)
func NewSSOService(ctx context.Context, cfg config.OIDCConfig) (*SSOService, error) {
	if cfg.IssuerURL == "" || cfg.ClientID == "" {
		return nil, nil
	}
	if cfg.ClientSecret == "" || cfg.RedirectURL == "" {
		return nil, fmt.Errorf("%w: OIDC_CLIENT_SECRET/OIDC_REDIRECT_URL are required", ErrMisconfigured)
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &SSOService{
		provider: provider,
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauthCfg: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

// AuthURL - 로그인 시작 URL 생성. state는 콜백에서 검증
func (s *SSOService) AuthURL() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	state := base64.RawURLEncoding.EncodeToString(raw)
	s.states.Store(state, time.Now())
	return s.oauthCfg.AuthCodeURL(state), nil
}

// Exchange - 콜백 처리. state 검증 후 code를 토큰으로 교환하고 ID 토큰 파싱
func (s *SSOService) Exchange(ctx context.Context, state, code string) (*SSOIdentity, error) {
	issued, ok := s.states.LoadAndDelete(state)
	if !ok || time.Since(issued.(time.Time)) > ssoStateTTL {
		return nil, ErrUnauthorized
	}

	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, fmt.Errorf("no id_token in token response")
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id_token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse id_token claims: %w", err)
	}

	return &SSOIdentity{
		Subject: idToken.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

// LoginID - SSO 계정의 로그인 ID 결정 (이메일 우선, 없으면 subject)
func (id *SSOIdentity) LoginID() string {
	if id.Email != "" {
		return id.Email
	}
	return id.Subject
}
