package envsource

import "testing"

func TestProcess(t *testing.T) {
	t.Setenv("BRANDKIT_TEST_PRESENT", "")

	v, ok := Process()("BRANDKIT_TEST_PRESENT")
	if !ok || v != "" {
		t.Fatalf("expected empty but present, got %q ok=%v", v, ok)
	}
	if _, ok := Process()("BRANDKIT_TEST_SURELY_ABSENT_1234"); ok {
		t.Fatalf("expected absent variable")
	}
}

func TestMapCopiesInput(t *testing.T) {
	src := map[string]string{"BRAND_ID": "acme"}
	l := Map(src)
	src["BRAND_ID"] = "changed"

	if v, _ := l("BRAND_ID"); v != "acme" {
		t.Fatalf("expected copy semantics, got %q", v)
	}
}

func TestLayered(t *testing.T) {
	l := Layered(
		nil,
		Map(map[string]string{"BRAND_NAME": ""}),
		Map(map[string]string{"BRAND_NAME": "fallback", "DISPLAY_NAME": "App"}),
	)

	if v, ok := l("BRAND_NAME"); !ok || v != "" {
		t.Fatalf("expected first layer to win even when empty, got %q ok=%v", v, ok)
	}
	if v, ok := l("DISPLAY_NAME"); !ok || v != "App" {
		t.Fatalf("expected second layer, got %q ok=%v", v, ok)
	}
	if _, ok := l("BRAND_ID"); ok {
		t.Fatalf("expected miss")
	}
}
