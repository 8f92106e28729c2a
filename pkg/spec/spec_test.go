package spec

import (
	"encoding/json"
	"reflect"
	"testing"

	"deckflow/pkg/errors"
)

func TestEdgeJSONRoundTrip(t *testing.T) {
	e := Edge{From: "Input", To: "Output"}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `["Input","Output"]` {
		t.Errorf("wire format = %s, want 2-element array", data)
	}

	var back Edge
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != e {
		t.Errorf("round trip = %+v, want %+v", back, e)
	}
}

func TestEdgeUnmarshalTolerance(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Edge
	}{
		{"valid pair", `["A","B"]`, Edge{From: "A", To: "B"}},
		{"extra elements ignored", `["A","B","C"]`, Edge{From: "A", To: "B"}},
		{"too short", `["A"]`, Edge{}},
		{"empty array", `[]`, Edge{}},
		{"non-string elements", `[1,2]`, Edge{}},
		{"object instead of array", `{"from":"A","to":"B"}`, Edge{}},
		{"null", `null`, Edge{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Edge
			if err := json.Unmarshal([]byte(tt.in), &e); err != nil {
				t.Fatalf("Unmarshal(%s) should never error, got %v", tt.in, err)
			}
			if e != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, e, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := &Presentation{
		Title: "T",
		Slides: []Slide{{
			Type:     SlideFlow,
			Title:    "f",
			Keywords: []string{"a"},
			Diagram:  &Diagram{Nodes: []string{"A"}, Edges: []Edge{{From: "A", To: "A"}}},
		}},
	}

	c := p.Clone()
	c.Slides[0].Keywords[0] = "mutated"
	c.Slides[0].Diagram.Nodes[0] = "mutated"

	if p.Slides[0].Keywords[0] != "a" {
		t.Error("Clone shares keyword backing array")
	}
	if p.Slides[0].Diagram.Nodes[0] != "A" {
		t.Error("Clone shares diagram nodes")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTitle string
		wantErr   bool
	}{
		{
			"bare object",
			`{"title":"T","slides":[{"type":"intro","title":"a","content":"x"}]}`,
			"T", false,
		},
		{
			"markdown fenced",
			"Here you go:\n```json\n{\"title\":\"Fenced\",\"slides\":[]}\n```\nHope that helps!",
			"Fenced", false,
		},
		{
			"leading commentary",
			`Sure! {"title":"Chatty","slides":[]}`,
			"Chatty", false,
		},
		{"no object at all", "sorry, I cannot do that", "", true},
		{"empty input", "", "", true},
		{"broken json", `{"title": "T", "slides": [}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidSpecFile) {
					t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidSpecFile)
				}
				return
			}
			if p.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", p.Title, tt.wantTitle)
			}
		})
	}
}

func TestDecodeDiagram(t *testing.T) {
	in := `{
		"title": "Flows",
		"slides": [{
			"type": "flow",
			"title": "Pipeline",
			"content": "",
			"diagram": {
				"nodes": ["A", "B", "C"],
				"edges": [["A","B"], ["B","C"], ["B"], "garbage"]
			}
		}]
	}`

	p, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	d := p.Slides[0].Diagram
	if d == nil {
		t.Fatal("diagram not decoded")
	}
	if !reflect.DeepEqual(d.Nodes, []string{"A", "B", "C"}) {
		t.Errorf("Nodes = %v", d.Nodes)
	}
	want := []Edge{{From: "A", To: "B"}, {From: "B", To: "C"}, {}, {}}
	if !reflect.DeepEqual(d.Edges, want) {
		t.Errorf("Edges = %+v, want malformed entries zeroed, %+v", d.Edges, want)
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		p    Presentation
	}{
		{"no title", Presentation{Slides: []Slide{{Type: SlideIntro}}}},
		{"no slides", Presentation{Title: "T"}},
		{"unknown role", Presentation{Title: "T", Slides: []Slide{{Type: "gallery"}}}},
		{
			"diagram without nodes",
			Presentation{Title: "T", Slides: []Slide{{Type: SlideFlow, Diagram: &Diagram{}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	p := Synthetic("Round Trip", 4)
	data, err := Marshal(&p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(&p, back) {
		t.Errorf("round trip mismatch:\nin  = %+v\nout = %+v", p, *back)
	}
}
