package service

import (
	"strings"
	"testing"
)

func TestSanitizeTextTrimsAndNormalizes(t *testing.T) {
	text, message := sanitizeText("  수고 많으셨어요  ")
	if message != "" {
		t.Fatalf("unexpected rejection: %s", message)
	}
	if text != "수고 많으셨어요" {
		t.Errorf("text = %q", text)
	}
}

func TestSanitizeTextTooShort(t *testing.T) {
	// 공백 제거 후 5자 미만
	cases := []string{"", "좋아요", "   좋아요   ", "abcd"}
	for _, input := range cases {
		text, message := sanitizeText(input)
		if message != "5자 이상 입력해주세요." {
			t.Errorf("sanitizeText(%q) message = %q", input, message)
		}
		if text != "" {
			t.Errorf("sanitizeText(%q) text = %q, want empty", input, text)
		}
	}
}

func TestSanitizeTextTooLong(t *testing.T) {
	input := strings.Repeat("가", 61)
	_, message := sanitizeText(input)
	if message != "60자 이내로 입력해주세요." {
		t.Errorf("message = %q", message)
	}

	// 정확히 60자는 통과
	text, message := sanitizeText(strings.Repeat("가", 60))
	if message != "" {
		t.Errorf("60-rune text rejected: %s", message)
	}
	if text != strings.Repeat("가", 60) {
		t.Errorf("60-rune text altered")
	}
}

func TestSanitizeTextMasksBannedWords(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"코드가 진짜 시발 엉망이에요", "코드가 진짜 *** 엉망이에요"},
		{"이건 FUCK 수준입니다", "이건 *** 수준입니다"},
		{"존나 고생하셨습니다", "*** 고생하셨습니다"},
	}
	for _, tc := range cases {
		text, message := sanitizeText(tc.input)
		if message != "" {
			t.Errorf("sanitizeText(%q) rejected: %s", tc.input, message)
			continue
		}
		if text != tc.want {
			t.Errorf("sanitizeText(%q) = %q, want %q", tc.input, text, tc.want)
		}
	}
}

func TestSanitizeTextLengthCheckedBeforeMasking(t *testing.T) {
	// 길이 검증이 마스킹보다 먼저다. 4자 욕설은 길이로 거절된다.
	_, message := sanitizeText("fuck")
	if message != "5자 이상 입력해주세요." {
		t.Errorf("message = %q", message)
	}
}
