package lander

import "testing"

func TestDialogFor(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range []Outcome{OutcomeSuccess, OutcomeHardLanding, OutcomeBadAngle, OutcomeOutOfFuel} {
		d, ok := DialogFor(o)
		if !ok || d.Title == "" || d.Body == "" {
			t.Errorf("DialogFor(%v) = %+v, %v", o, d, ok)
		}
		if seen[d.Body] {
			t.Errorf("DialogFor(%v) repeats another outcome's message", o)
		}
		seen[d.Body] = true
	}

	if d, _ := DialogFor(OutcomeSuccess); d.Title != "Mission Success!" {
		t.Errorf("success title = %q", d.Title)
	}
	if d, _ := DialogFor(OutcomeBadAngle); d.Title != "Mission Failed!" {
		t.Errorf("bad angle title = %q", d.Title)
	}
	if _, ok := DialogFor(OutcomeNone); ok {
		t.Error("aborted flight produced a dialog")
	}
}
