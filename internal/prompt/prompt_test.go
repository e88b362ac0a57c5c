package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yuilib/yuigen/internal/config"
)

func newTestAsker(input string) (*Asker, *bytes.Buffer) {
	var out bytes.Buffer
	return NewAsker(strings.NewReader(input), &out), &out
}

func TestAsk_UsesAnswer(t *testing.T) {
	a, out := newTestAsker("  hello \n")
	got, err := a.Ask("Greeting", "hi", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if out.String() != "? Greeting (hi): " {
		t.Errorf("unexpected prompt %q", out.String())
	}
}

func TestAsk_EmptyAnswerTakesDefault(t *testing.T) {
	a, _ := newTestAsker("\n")
	got, err := a.Ask("Greeting", "hi", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi" {
		t.Errorf("expected default 'hi', got %q", got)
	}
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	a, _ := newTestAsker("hello")
	got, err := a.Ask("Greeting", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
}

func TestAsk_EOFIsError(t *testing.T) {
	a, _ := newTestAsker("")
	_, err := a.Ask("Module name", "", nil)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestAsk_RequiredEmpty(t *testing.T) {
	a, _ := newTestAsker("\n")
	_, err := a.Ask("Module name", "", nil)
	if err == nil || !strings.Contains(err.Error(), "module name is required") {
		t.Fatalf("expected required error, got %v", err)
	}
}

func TestAsk_ValidationError(t *testing.T) {
	a, _ := newTestAsker("bad\n")
	wantErr := errors.New("nope")
	_, err := a.Ask("Value", "", func(string) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAsk_NonInteractive(t *testing.T) {
	a, out := newTestAsker("ignored\n")
	a.NonInteractive = true

	got, err := a.Ask("Greeting", "hi", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi" {
		t.Errorf("expected default 'hi', got %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("expected no prompt output, got %q", out.String())
	}

	if _, err := a.Ask("Module name", "", nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput without default, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	items := []string{"css", "js", "widget"}
	tests := []struct {
		name    string
		input   string
		def     int
		want    int
		wantErr string
	}{
		{"explicit choice", "3\n", 1, 2, ""},
		{"empty takes default", "\n", 1, 1, ""},
		{"out of range default", "\n", 7, 0, ""},
		{"zero", "0\n", 0, 0, "invalid selection \"0\": choose 1-3"},
		{"too large", "4\n", 0, 0, "invalid selection \"4\": choose 1-3"},
		{"not a number", "js\n", 0, 0, "invalid selection \"js\": choose 1-3"},
		{"eof", "", 0, 0, "reading selection"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newTestAsker(tt.input)
			got, err := a.Select("Module type:", items, tt.def)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected index %d, got %d", tt.want, got)
			}
			if !strings.Contains(out.String(), "  2) js\n") {
				t.Errorf("expected numbered menu, got %q", out.String())
			}
		})
	}
}

func TestCollectModule_AllPrompts(t *testing.T) {
	a, out := newTestAsker("image-cropper\n\n3\n")
	ans, err := a.CollectModule(ModuleAnswers{}, config.Defaults{ModuleType: "js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Name != "image-cropper" {
		t.Errorf("expected name 'image-cropper', got %q", ans.Name)
	}
	if ans.Title != "Image Cropper" {
		t.Errorf("expected derived title 'Image Cropper', got %q", ans.Title)
	}
	if ans.Type != "widget" {
		t.Errorf("expected type 'widget', got %q", ans.Type)
	}
	if !strings.Contains(out.String(), "? Module title (Image Cropper): ") {
		t.Errorf("expected title prompt with default, got %q", out.String())
	}
}

func TestCollectModule_TypeDefaultFromConfig(t *testing.T) {
	a, _ := newTestAsker("foo\nFoo\n\n")
	ans, err := a.CollectModule(ModuleAnswers{}, config.Defaults{ModuleType: "css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Type != "css" {
		t.Errorf("expected configured type 'css', got %q", ans.Type)
	}
}

func TestCollectModule_PresetsSkipQuestions(t *testing.T) {
	a, out := newTestAsker("")
	ans, err := a.CollectModule(ModuleAnswers{Name: "bar", Title: "Bar", Type: "js"}, config.Defaults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *ans != (ModuleAnswers{Name: "bar", Title: "Bar", Type: "js"}) {
		t.Errorf("unexpected answers %+v", ans)
	}
	if out.Len() != 0 {
		t.Errorf("expected no questions, got %q", out.String())
	}
}

func TestCollectModule_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		preset ModuleAnswers
	}{
		{"invalid preset name", "", ModuleAnswers{Name: "Bad Name"}},
		{"invalid preset type", "", ModuleAnswers{Name: "foo", Title: "Foo", Type: "jsx"}},
		{"invalid typed name", "Bad\n", ModuleAnswers{}},
		{"eof on name", "", ModuleAnswers{}},
		{"eof on type", "foo\n\n", ModuleAnswers{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAsker(tt.input)
			if _, err := a.CollectModule(tt.preset, config.Defaults{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCollectModule_NonInteractive(t *testing.T) {
	a, _ := newTestAsker("")
	a.NonInteractive = true

	ans, err := a.CollectModule(ModuleAnswers{Name: "foo"}, config.Defaults{ModuleType: "widget"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Title != "Foo" || ans.Type != "widget" {
		t.Errorf("unexpected answers %+v", ans)
	}

	if _, err := a.CollectModule(ModuleAnswers{}, config.Defaults{}); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput without a name, got %v", err)
	}
}

func TestCollectProject_Defaults(t *testing.T) {
	a, _ := newTestAsker("\n\n\n\n\n")
	ans, err := a.CollectProject(ProjectAnswers{}, "my-lib", config.Defaults{YUIVersion: "3.17.2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ProjectAnswers{
		Name:        "my-lib",
		Description: "My Lib component library.",
		Author:      "",
		Version:     "0.0.0",
		YUIVersion:  "3.17.2",
	}
	if *ans != want {
		t.Errorf("expected %+v, got %+v", want, *ans)
	}
}

func TestCollectProject_Answers(t *testing.T) {
	a, _ := newTestAsker("widgets\nShared widgets.\nJane Doe\n1.0.0\n\n")
	ans, err := a.CollectProject(ProjectAnswers{}, "ignored", config.Defaults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ProjectAnswers{
		Name:        "widgets",
		Description: "Shared widgets.",
		Author:      "Jane Doe",
		Version:     "1.0.0",
		YUIVersion:  "3.18.1",
	}
	if *ans != want {
		t.Errorf("expected %+v, got %+v", want, *ans)
	}
}

func TestCollectProject_ConfiguredAuthor(t *testing.T) {
	a, _ := newTestAsker("")
	a.NonInteractive = true
	ans, err := a.CollectProject(ProjectAnswers{}, "lib", config.Defaults{Author: "Config Author"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Author != "Config Author" {
		t.Errorf("expected configured author, got %q", ans.Author)
	}
}

func TestCollectProject_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		preset      ProjectAnswers
		defaultName string
	}{
		{"invalid version", "\n\n\nlatest\n", ProjectAnswers{}, "lib"},
		{"invalid preset yui version", "\n\n\n", ProjectAnswers{Name: "lib", YUIVersion: "v3"}, "lib"},
		{"invalid default name", "\n", ProjectAnswers{}, "My Lib"},
		{"eof", "", ProjectAnswers{}, "lib"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAsker(tt.input)
			if _, err := a.CollectProject(tt.preset, tt.defaultName, config.Defaults{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
