package nixcache

import (
	"testing"
)

const sampleNARInfo = `StorePath: /nix/store/xxx-udev-255
URL: nar/xxx.nar.xz
Compression: xz
FileHash: sha256:0c0ffeec0ffeec0ffeec0ffeec0ffee
FileSize: 123456
NarHash: sha256:1badb002
NarSize: 654321
References: yyy-glibc-2.38 zzz-libcap-2.69
Deriver: ddd-udev-255.drv
Sig: cache.nixos.org-1:abcdef
`

func TestParseNARInfo(t *testing.T) {
	info, err := ParseNARInfo(sampleNARInfo)
	if err != nil {
		t.Fatalf("ParseNARInfo() error: %v", err)
	}

	if info.StorePath != "/nix/store/xxx-udev-255" {
		t.Errorf("StorePath = %q", info.StorePath)
	}
	if info.URL != "nar/xxx.nar.xz" {
		t.Errorf("URL = %q", info.URL)
	}
	if info.Compression != CompressionXZ {
		t.Errorf("Compression = %q", info.Compression)
	}
	if info.FileHash != "0c0ffeec0ffeec0ffeec0ffeec0ffee" {
		t.Errorf("FileHash = %q (sha256: prefix should be stripped)", info.FileHash)
	}
	if info.FileSize != 123456 {
		t.Errorf("FileSize = %d", info.FileSize)
	}
	if info.NarSize != 654321 {
		t.Errorf("NarSize = %d", info.NarSize)
	}
	if len(info.References) != 2 {
		t.Errorf("len(References) = %d, want 2", len(info.References))
	}
	if info.Signature != "cache.nixos.org-1:abcdef" {
		t.Errorf("Signature = %q", info.Signature)
	}
}

func TestParseNARInfoDefaults(t *testing.T) {
	info, err := ParseNARInfo("StorePath: /nix/store/aaa-zlib-1.3\nURL: nar/aaa.nar\n")
	if err != nil {
		t.Fatal(err)
	}
	if info.Compression != CompressionNone {
		t.Errorf("Compression = %q, want %q when unset", info.Compression, CompressionNone)
	}
}

func TestParseNARInfoErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"missing store path", "URL: nar/xxx.nar.xz\n"},
		{"missing url", "StorePath: /nix/store/xxx-udev-255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseNARInfo(tt.content); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestStoreHash(t *testing.T) {
	tests := []struct {
		storePath string
		want      string
	}{
		{"/nix/store/xxx-udev-255", "xxx"},
		{"/nix/store/yyy-alsa-lib-1.2.10", "yyy"},
		{"zzz-wayland-1.22.0", "zzz"},
		{"plainhash", "plainhash"},
	}

	for _, tt := range tests {
		info := &NARInfo{StorePath: tt.storePath}
		if got := info.StoreHash(); got != tt.want {
			t.Errorf("StoreHash(%q) = %q, want %q", tt.storePath, got, tt.want)
		}
	}
}

func TestToNixBase32(t *testing.T) {
	got := toNixBase32([]byte{0x00, 0x01, 0x02, 0x03})
	if len(got) != 7 {
		t.Errorf("encoded length = %d, want 7", len(got))
	}
	for _, c := range got {
		found := false
		for _, a := range nixBase32Alphabet {
			if c == a {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("character %q not in nix base32 alphabet", c)
		}
	}

	// Deterministic, and sensitive to input
	if toNixBase32([]byte{1, 2, 3}) != toNixBase32([]byte{1, 2, 3}) {
		t.Error("encoding not deterministic")
	}
	if toNixBase32([]byte{1, 2, 3}) == toNixBase32([]byte{3, 2, 1}) {
		t.Error("different inputs encoded identically")
	}
}
