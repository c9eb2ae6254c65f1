package xmac

import (
	"strings"
	"testing"
)

func TestAddr_String(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want string
	}{
		{"mixed", sample, "aa:bb:cc:dd:ee:ff"},
		{"zero", Addr{}, "00:00:00:00:00:00"},
		{"broadcast", Broadcast(), "ff:ff:ff:ff:ff:ff"},
		{"leading_zeros", AddrFrom6([6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}), "01:02:03:04:05:06"},
		{"example", AddrFromUint64(0x001a2b3c4d5e), "00:1a:2b:3c:4d:5e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.addr.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if len(got) != 17 {
				t.Errorf("len(String()) = %d, want 17", len(got))
			}
			if Format(tt.addr) != got {
				t.Errorf("Format() = %q, want %q", Format(tt.addr), got)
			}
		})
	}
}

func TestAddr_FormatString(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleColon, "aa:bb:cc:dd:ee:ff"},
		{StyleDash, "aa-bb-cc-dd-ee-ff"},
		{StyleDot, "aabb.ccdd.eeff"},
		{StyleBare, "aabbccddeeff"},
		{StyleColonUpper, "AA:BB:CC:DD:EE:FF"},
		{StyleDashUpper, "AA-BB-CC-DD-EE-FF"},
		{StyleDotUpper, "AABB.CCDD.EEFF"},
		{StyleBareUpper, "AABBCCDDEEFF"},
		{Style(255), "aa:bb:cc:dd:ee:ff"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got := sample.FormatString(tt.style)
			if got != tt.want {
				t.Errorf("FormatString(%v) = %q, want %q", tt.style, got, tt.want)
			}
			// 所有风格的输出都能解析回原地址
			back, err := Parse(got)
			if err != nil || back != sample {
				t.Errorf("Parse(%q) = %v, %v", got, back, err)
			}
		})
	}
}

func TestAddr_AppendFormat(t *testing.T) {
	buf := []byte("mac=")
	buf = sample.AppendFormat(buf, StyleDash)
	if string(buf) != "mac=aa-bb-cc-dd-ee-ff" {
		t.Errorf("AppendFormat() = %q", buf)
	}
}

func TestParseStyle(t *testing.T) {
	for i := range styleNames {
		s := Style(i)
		got, err := ParseStyle(strings.ToUpper(s.String()))
		if err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v", s.String(), got, err)
		}
	}

	if _, err := ParseStyle("hex"); err == nil {
		t.Error("ParseStyle(hex) expected error")
	}
	if got := Style(200).String(); got != "Style(200)" {
		t.Errorf("Style(200).String() = %q", got)
	}
}

func TestFormat_RoundTripLowercases(t *testing.T) {
	inputs := map[string]string{
		"AA:BB:CC:DD:EE:FF": "aa:bb:cc:dd:ee:ff",
		"0A-1B-2C-3D-4E-5F": "0a:1b:2c:3d:4e:5f",
		"00:00:00:00:00:00": "00:00:00:00:00:00",
		"Ff:fF:00:11:aB:Cd": "ff:ff:00:11:ab:cd",
	}
	for in, want := range inputs {
		if got := Format(MustParse(in)); got != want {
			t.Errorf("Format(Parse(%q)) = %q, want %q", in, got, want)
		}
	}
}
