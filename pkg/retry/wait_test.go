package retry

import (
	"testing"
	"time"
)

func TestConstant(t *testing.T) {
	gen := Constant(250 * time.Millisecond)()

	for i := 0; i < 5; i++ {
		if got := gen.Next(); got != 250*time.Millisecond {
			t.Errorf("Next() #%d = %v, want %v", i+1, got, 250*time.Millisecond)
		}
	}
}

func TestExpo_Defaults(t *testing.T) {
	wait, err := Expo()
	if err != nil {
		t.Fatalf("Expo() error: %v", err)
	}
	gen := wait()

	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}
	for i, w := range want {
		if got := gen.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i+1, got, w)
		}
	}
}

func TestExpo_MaxWaitClampsWithoutStopping(t *testing.T) {
	wait, err := Expo(WithMaxWait(10 * time.Second))
	if err != nil {
		t.Fatalf("Expo() error: %v", err)
	}
	gen := wait()

	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second, // clamped, not stopped
		10 * time.Second,
		10 * time.Second,
	}
	for i, w := range want {
		if got := gen.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i+1, got, w)
		}
	}
}

func TestExpo_BaseAndFactor(t *testing.T) {
	wait, err := Expo(WithBase(3), WithFactor(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Expo() error: %v", err)
	}
	gen := wait()

	want := []time.Duration{
		10 * time.Millisecond,
		30 * time.Millisecond,
		90 * time.Millisecond,
		270 * time.Millisecond,
	}
	for i, w := range want {
		if got := gen.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i+1, got, w)
		}
	}
}

func TestFibo(t *testing.T) {
	wait, err := Fibo()
	if err != nil {
		t.Fatalf("Fibo() error: %v", err)
	}
	gen := wait()

	want := []time.Duration{
		1 * time.Second,
		1 * time.Second,
		2 * time.Second,
		3 * time.Second,
		5 * time.Second,
		8 * time.Second,
	}
	for i, w := range want {
		if got := gen.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i+1, got, w)
		}
	}
}

func TestFibo_MaxWaitClampsWithoutStopping(t *testing.T) {
	wait, err := Fibo(WithMaxWait(5 * time.Second))
	if err != nil {
		t.Fatalf("Fibo() error: %v", err)
	}
	gen := wait()

	want := []time.Duration{
		1 * time.Second,
		1 * time.Second,
		2 * time.Second,
		3 * time.Second,
		5 * time.Second,
		5 * time.Second,
		5 * time.Second,
	}
	for i, w := range want {
		if got := gen.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i+1, got, w)
		}
	}
}

func TestWaitFunc_FreshGeneratorPerInvocation(t *testing.T) {
	wait, err := Expo()
	if err != nil {
		t.Fatalf("Expo() error: %v", err)
	}

	g1 := wait()
	g1.Next()
	g1.Next()
	g1.Next()

	// a second invocation starts the progression over
	g2 := wait()
	if got := g2.Next(); got != time.Second {
		t.Errorf("fresh generator Next() = %v, want %v", got, time.Second)
	}
	// and pulling from it does not disturb the first
	if got := g1.Next(); got != 8*time.Second {
		t.Errorf("original generator Next() = %v, want %v", got, 8*time.Second)
	}
}

func TestWaitConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (WaitFunc, error)
	}{
		{"expo zero max wait", func() (WaitFunc, error) { return Expo(WithMaxWait(0)) }},
		{"expo negative max wait", func() (WaitFunc, error) { return Expo(WithMaxWait(-time.Second)) }},
		{"expo zero base", func() (WaitFunc, error) { return Expo(WithBase(0)) }},
		{"expo negative base", func() (WaitFunc, error) { return Expo(WithBase(-2)) }},
		{"expo zero factor", func() (WaitFunc, error) { return Expo(WithFactor(0)) }},
		{"fibo zero max wait", func() (WaitFunc, error) { return Fibo(WithMaxWait(0)) }},
		{"fibo negative factor", func() (WaitFunc, error) { return Fibo(WithFactor(-time.Second)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait, err := tt.build()
			if err == nil {
				t.Fatal("expected configuration error, got nil")
			}
			if wait != nil {
				t.Error("expected nil wait function on configuration error")
			}
		})
	}
}

func TestWaitOption_IgnoredWhereNotMeaningful(t *testing.T) {
	// base has no meaning for fibonacci and is silently ignored
	wait, err := Fibo(WithBase(7), WithFactor(time.Millisecond))
	if err != nil {
		t.Fatalf("Fibo() error: %v", err)
	}
	gen := wait()
	if got := gen.Next(); got != time.Millisecond {
		t.Errorf("Next() = %v, want %v", got, time.Millisecond)
	}
}
