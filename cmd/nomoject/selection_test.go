package main

import (
	"testing"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		n       int
		want    []int
		wantErr bool
	}{
		{"single", "2", 3, []int{1}, false},
		{"list keeps order", "3,1", 3, []int{2, 0}, false},
		{"range", "2-4", 5, []int{1, 2, 3}, false},
		{"mixed with spaces", " 1 , 3-4 ", 4, []int{0, 2, 3}, false},
		{"duplicates dropped", "1,1-2,2", 3, []int{0, 1}, false},
		{"empty parts ignored", "1,,2,", 3, []int{0, 1}, false},
		{"empty list", "", 3, nil, false},
		{"zero", "0", 3, nil, true},
		{"past end", "4", 3, nil, true},
		{"not a number", "abc", 3, nil, true},
		{"reversed range", "3-1", 3, nil, true},
		{"open range", "2-", 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.spec, tt.n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPick(t *testing.T) {
	records := []device.Record{
		{Description: "a"}, {Description: "b"}, {Description: "c"},
	}

	got := pick(records, []int{2, 0})
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Description)
	assert.Equal(t, "a", got[1].Description)

	assert.Empty(t, pick(records, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Intel...", truncate("Intel SATA Controller", 8))
	assert.Equal(t, "Contrôleur", truncate("Contrôleur", 10))
}

func TestResolveLocale(t *testing.T) {
	loc, err := resolveLocale("pt-BR", "en")
	require.NoError(t, err)
	assert.Equal(t, "pt_BR", string(loc))

	loc, err = resolveLocale("", "pt_BR")
	require.NoError(t, err)
	assert.Equal(t, "pt_BR", string(loc))

	_, err = resolveLocale("toolonglanguage", "")
	assert.Error(t, err)

	t.Setenv("LC_ALL", "en_US.UTF-8")
	loc, err = resolveLocale("", "toolonglanguage")
	require.NoError(t, err)
	assert.NotEmpty(t, loc)
}
