package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// parseContext parses a document and builds the shared rule context the
// engine would pass in.
func parseContext(t *testing.T, content string) (*mxgraph.Document, *linter.Context) {
	t.Helper()
	doc, err := mxgraph.ParseString(content)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return doc, linter.NewContext(doc, linter.DefaultConfig())
}

func wrapCells(cells string) string {
	return `<mxGraphModel page="0"><root>` + cells + `</root></mxGraphModel>`
}

func TestFontFamilyRule(t *testing.T) {
	rule := NewFontFamilyRule()

	tests := []struct {
		name  string
		cell  string
		wantN int
	}{
		{
			name:  "text without fontFamily",
			cell:  `<mxCell id="a" value="Hello" style="rounded=1;" vertex="1"/>`,
			wantN: 1,
		},
		{
			name:  "text with fontFamily",
			cell:  `<mxCell id="a" value="Hello" style="fontFamily=Helvetica;" vertex="1"/>`,
			wantN: 0,
		},
		{
			name:  "no text no style",
			cell:  `<mxCell id="a" vertex="1"/>`,
			wantN: 0,
		},
		{
			name:  "style mentions text but value empty",
			cell:  `<mxCell id="a" style="text;html=1;" vertex="1"/>`,
			wantN: 0,
		},
		{
			name:  "prefix key is not a match",
			cell:  `<mxCell id="a" value="Hello" style="fontFamilyFallback=Arial;" vertex="1"/>`,
			wantN: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ctx := parseContext(t, wrapCells(tt.cell))
			findings := rule.Check(doc, ctx)

			if len(findings) != tt.wantN {
				t.Fatalf("findings = %d, want %d: %v", len(findings), tt.wantN, findings)
			}
			if tt.wantN == 1 {
				want := "Cell 'a' has text but missing fontFamily in style"
				if findings[0].Message != want {
					t.Errorf("message = %q, want %q", findings[0].Message, want)
				}
				if findings[0].Severity != linter.SeverityError {
					t.Errorf("severity = %q, want error", findings[0].Severity)
				}
			}
		})
	}
}

func TestFontFamilyRule_UnknownID(t *testing.T) {
	rule := NewFontFamilyRule()
	doc, ctx := parseContext(t, wrapCells(`<mxCell value="Hello" style="rounded=1;"/>`))

	findings := rule.Check(doc, ctx)
	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(findings))
	}
	if !strings.Contains(findings[0].Message, "'unknown'") {
		t.Errorf("message should name the unknown cell id: %q", findings[0].Message)
	}
}

func TestFontSizeRule(t *testing.T) {
	rule := NewFontSizeRule()

	tests := []struct {
		name         string
		size         string
		wantSeverity linter.Severity
		wantNone     bool
	}{
		{name: "below minimum", size: "10", wantSeverity: linter.SeverityError},
		{name: "just below minimum", size: "13", wantSeverity: linter.SeverityError},
		{name: "exactly minimum", size: "14", wantSeverity: linter.SeverityWarning},
		{name: "below recommended", size: "17", wantSeverity: linter.SeverityWarning},
		{name: "exactly recommended", size: "18", wantNone: true},
		{name: "above recommended", size: "24", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := fmt.Sprintf(`<mxCell id="a" value="Hello" style="fontSize=%s;" vertex="1"/>`, tt.size)
			doc, ctx := parseContext(t, wrapCells(cell))
			findings := rule.Check(doc, ctx)

			if tt.wantNone {
				if len(findings) != 0 {
					t.Fatalf("expected no findings, got %v", findings)
				}
				return
			}

			if len(findings) != 1 {
				t.Fatalf("findings = %d, want 1: %v", len(findings), findings)
			}
			if findings[0].Severity != tt.wantSeverity {
				t.Errorf("severity = %q, want %q", findings[0].Severity, tt.wantSeverity)
			}
		})
	}
}

func TestFontSizeRule_Skips(t *testing.T) {
	rule := NewFontSizeRule()

	tests := []struct {
		name string
		cell string
	}{
		{"no fontSize key", `<mxCell id="a" value="Hello" style="rounded=1;"/>`},
		{"non-numeric fontSize", `<mxCell id="a" value="Hello" style="fontSize=big;"/>`},
		{"empty value", `<mxCell id="a" style="fontSize=6;"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ctx := parseContext(t, wrapCells(tt.cell))
			if findings := rule.Check(doc, ctx); len(findings) != 0 {
				t.Errorf("expected no findings, got %v", findings)
			}
		})
	}
}

func TestFontSizeRule_Messages(t *testing.T) {
	rule := NewFontSizeRule()
	doc, ctx := parseContext(t, wrapCells(`<mxCell id="a" value="x" style="fontSize=10;"/>`))

	findings := rule.Check(doc, ctx)
	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(findings))
	}
	want := "Cell 'a' has fontSize=10, minimum is 14"
	if findings[0].Message != want {
		t.Errorf("message = %q, want %q", findings[0].Message, want)
	}
}

func TestEdgeOrderRule(t *testing.T) {
	edge := `<mxCell id="e%d" edge="1"/>`
	vertex := `<mxCell id="v%d" vertex="1"/>`

	tests := []struct {
		name  string
		cells []string
		wantN int
	}{
		{
			name:  "edges before vertices",
			cells: []string{fmt.Sprintf(edge, 1), fmt.Sprintf(vertex, 1)},
			wantN: 0,
		},
		{
			name:  "edge after vertex",
			cells: []string{fmt.Sprintf(vertex, 1), fmt.Sprintf(edge, 1)},
			wantN: 1,
		},
		{
			name: "many trailing edges warn once",
			cells: []string{
				fmt.Sprintf(vertex, 1),
				fmt.Sprintf(edge, 1), fmt.Sprintf(edge, 2), fmt.Sprintf(edge, 3),
			},
			wantN: 1,
		},
		{
			name:  "only vertices",
			cells: []string{fmt.Sprintf(vertex, 1), fmt.Sprintf(vertex, 2)},
			wantN: 0,
		},
		{
			name:  "only edges",
			cells: []string{fmt.Sprintf(edge, 1)},
			wantN: 0,
		},
	}

	rule := NewEdgeOrderRule()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ctx := parseContext(t, wrapCells(strings.Join(tt.cells, "")))
			findings := rule.Check(doc, ctx)

			if len(findings) != tt.wantN {
				t.Fatalf("findings = %d, want %d: %v", len(findings), tt.wantN, findings)
			}
			if tt.wantN == 1 && findings[0].Message != edgeOrderMessage {
				t.Errorf("message = %q", findings[0].Message)
			}
		})
	}
}

func TestTextWidthRule(t *testing.T) {
	rule := NewTextWidthRule()

	tests := []struct {
		name  string
		cell  string
		wantN int
	}{
		{
			name:  "3 CJK chars narrow box",
			cell:  `<mxCell id="a" value="テスト"><mxGeometry width="40"/></mxCell>`,
			wantN: 1,
		},
		{
			name:  "3 CJK chars wide enough",
			cell:  `<mxCell id="a" value="テスト"><mxGeometry width="90"/></mxCell>`,
			wantN: 0,
		},
		{
			name:  "latin text only",
			cell:  `<mxCell id="a" value="Hello"><mxGeometry width="10"/></mxCell>`,
			wantN: 0,
		},
		{
			name:  "CJK text but no geometry child",
			cell:  `<mxCell id="a" value="テスト"/>`,
			wantN: 0,
		},
		{
			name:  "geometry without width counts as zero",
			cell:  `<mxCell id="a" value="テスト"><mxGeometry x="1"/></mxCell>`,
			wantN: 1,
		},
		{
			name:  "non-numeric width skipped",
			cell:  `<mxCell id="a" value="テスト"><mxGeometry width="wide"/></mxCell>`,
			wantN: 0,
		},
		{
			name:  "mixed text counts only CJK",
			cell:  `<mxCell id="a" value="AB漢字CD"><mxGeometry width="59"/></mxCell>`,
			wantN: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ctx := parseContext(t, wrapCells(tt.cell))
			findings := rule.Check(doc, ctx)

			if len(findings) != tt.wantN {
				t.Fatalf("findings = %d, want %d: %v", len(findings), tt.wantN, findings)
			}
		})
	}
}

func TestTextWidthRule_Message(t *testing.T) {
	rule := NewTextWidthRule()
	doc, ctx := parseContext(t, wrapCells(`<mxCell id="box1" value="テスト"><mxGeometry width="40"/></mxCell>`))

	findings := rule.Check(doc, ctx)
	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(findings))
	}
	want := "Cell 'box1' has 3 Japanese chars with width=40, recommended width is 90"
	if findings[0].Message != want {
		t.Errorf("message = %q, want %q", findings[0].Message, want)
	}
}

func TestCountCJK(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"テスト", 3},           // Katakana
		{"ひらがな", 4},          // Hiragana
		{"漢字", 2},            // Ideographs
		{"Hello", 0},         // Latin
		{"図Aと図B", 3},         // mixed
		{"", 0},              // empty
		{"ｱｲｳ", 0},            // halfwidth katakana is outside the checked blocks
		{"設定ファイル読み込み", 10},    // typical label
		{"システム構成図 v2.1", 7},   // label with version suffix
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := countCJK(tt.input); got != tt.want {
				t.Errorf("countCJK(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPageSettingRule(t *testing.T) {
	rule := NewPageSettingRule()

	tests := []struct {
		name  string
		doc   string
		wantN int
	}{
		{
			name:  "page zero",
			doc:   `<mxfile><diagram><mxGraphModel page="0"><root/></mxGraphModel></diagram></mxfile>`,
			wantN: 0,
		},
		{
			name:  "page one",
			doc:   `<mxfile><diagram><mxGraphModel page="1"><root/></mxGraphModel></diagram></mxfile>`,
			wantN: 1,
		},
		{
			name:  "page absent defaults to one",
			doc:   `<mxfile><diagram><mxGraphModel><root/></mxGraphModel></diagram></mxfile>`,
			wantN: 1,
		},
		{
			name:  "no graph model at all",
			doc:   `<mxfile><diagram/></mxfile>`,
			wantN: 0,
		},
		{
			name:  "model as document root",
			doc:   `<mxGraphModel page="1"><root/></mxGraphModel>`,
			wantN: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ctx := parseContext(t, tt.doc)
			findings := rule.Check(doc, ctx)

			if len(findings) != tt.wantN {
				t.Fatalf("findings = %d, want %d: %v", len(findings), tt.wantN, findings)
			}
			if tt.wantN == 1 && findings[0].Message != pageSettingMessage {
				t.Errorf("message = %q", findings[0].Message)
			}
		})
	}
}

func TestDefaultRules_Order(t *testing.T) {
	rules := DefaultRules()

	wantOrder := []string{"font-family", "font-size", "edge-order", "text-width", "page-setting"}
	if len(rules) != len(wantOrder) {
		t.Fatalf("rule count = %d, want %d", len(rules), len(wantOrder))
	}
	for i, rule := range rules {
		if rule.Name() != wantOrder[i] {
			t.Errorf("rule %d = %q, want %q", i, rule.Name(), wantOrder[i])
		}
	}
}
