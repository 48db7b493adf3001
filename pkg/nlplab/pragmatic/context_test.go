package pragmatic

import "testing"

func TestAnalyzeContext(t *testing.T) {
	tests := []struct {
		input       string
		act         string
		meaning     string
		implicature string
	}{
		{"Can you pass the salt?", ActRequest, "Polite request for action", "Speaker wants the listener to perform an action"},
		{"Is it raining?", ActQuestion, "Information seeking", "Speaker wants information from listener"},
		{"It's cold in here", ActAssertion, "Indirect request to adjust temperature", "Speaker wants temperature to be changed"},
		{"This is a great book", ActAssertion, "Statement of fact or opinion", ""},
		{"I went home", "", "", ""},
	}
	for _, tt := range tests {
		got := AnalyzeContext(tt.input)
		if got.LiteralMeaning != tt.input {
			t.Errorf("%q: literal meaning = %q", tt.input, got.LiteralMeaning)
		}
		if got.SpeechAct != tt.act || got.PragmaticMeaning != tt.meaning || got.Implicature != tt.implicature {
			t.Errorf("AnalyzeContext(%q) = %+v", tt.input, got)
		}
	}
}

func TestAnalyzeContextPleaseIsNotIndirect(t *testing.T) {
	// "please" marks an intent REQUEST but not a REQUEST speech act.
	got := AnalyzeContext("Please, what time is it?")
	if got.SpeechAct != ActQuestion {
		t.Errorf("got %s, want QUESTION", got.SpeechAct)
	}
}

func TestAnalyzeContextQuestionBeatsAssertion(t *testing.T) {
	got := AnalyzeContext("It's cold, isn't it?")
	if got.SpeechAct != ActQuestion {
		t.Errorf("got %s, want QUESTION", got.SpeechAct)
	}
}

func TestAnalyzeContextNoInference(t *testing.T) {
	got := AnalyzeContext("Birds fly south")
	if got.Inferred() {
		t.Errorf("expected no inference, got %+v", got)
	}
}
