package utils

import (
	"image/color"
	"strings"
	"testing"
	"time"
)

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("ok", SuccessMessage)
	if !strings.HasPrefix(s, SuccessColor) || !strings.HasSuffix(s, DefaultColor) {
		t.Errorf("The message should be wrapped in color escapes, got: %q", s)
	}
}

func TestUtils_FormatTime(t *testing.T) {
	if got := FormatTime(1500 * time.Millisecond); got != "1.50s" {
		t.Errorf("Expected 1.50s, got: %v", got)
	}
	if got := FormatTime(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("Expected 1m 30.00s, got: %v", got)
	}
}

func TestUtils_ParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#715B64")
	if err != nil {
		t.Fatalf("could not parse a valid hex color: %v", err)
	}
	want := color.NRGBA{R: 0x71, G: 0x5b, B: 0x64, A: 0xff}
	if c != want {
		t.Errorf("Expected %v, got: %v", want, c)
	}

	for _, invalid := range []string{"", "#FFF", "#GGGGGG", "123456789"} {
		if _, err := ParseHexColor(invalid); err == nil {
			t.Errorf("Expected %q to be rejected", invalid)
		}
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://github.com/baremoney/brandgen/") {
		t.Errorf("A valid URL should have been accepted")
	}
	if IsValidUrl("fonts/Outfit-Variable.ttf") {
		t.Errorf("A relative path should not be mistaken for a URL")
	}
}
