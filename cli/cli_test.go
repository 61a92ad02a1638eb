package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mortgage-planner/config"
	"mortgage-planner/repository"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output missing %q:\n%s", w, output)
		}
	}
}

func TestScheduleCommand(t *testing.T) {
	code, out, errOut := runCLI(t,
		"schedule", "--principal", "1000000", "--rate", "5", "--years", "30",
	)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}

	assertContains(t, out,
		"Periods:        360",
		"First payment:  5368.22",
		"Last payment:   5368.22",
		"Yearly interest",
	)
	if strings.Contains(out, "Early repayment") {
		t.Errorf("unexpected repayment section:\n%s", out)
	}
}

func TestScheduleCommand_ShortenTerm(t *testing.T) {
	code, out, errOut := runCLI(t,
		"schedule", "--principal", "1000000", "--rate", "5", "--years", "30",
		"--repay-month", "60", "--repay-amount", "200000", "--policy", "shorten_term",
	)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}

	assertContains(t, out,
		"Early repayment of 200000.00 in month 60 (shorten_term)",
		"Effect:         shortened_term",
		"Saved months:   103",
		"Periods:        257",
	)
	if strings.Contains(out, "warning:") {
		t.Errorf("month 60 is inside the recommended window:\n%s", out)
	}
}

func TestScheduleCommand_ReducePaymentWithPeriods(t *testing.T) {
	code, out, errOut := runCLI(t,
		"schedule", "--principal", "120000", "--rate", "6", "--years", "1",
		"--repay-month", "6", "--repay-amount", "10000", "--policy", "reduce_payment",
		"--periods",
	)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}

	assertContains(t, out,
		"Effect:         reduced_payment",
		"New payment:",
		"Month",
		"Remaining",
	)
	if got := strings.Count(out, "\n"); got < 12 {
		t.Errorf("expected a row per period, got %d lines", got)
	}
}

func TestScheduleCommand_LateRepaymentWarns(t *testing.T) {
	code, out, _ := runCLI(t,
		"schedule", "--principal", "1000000", "--rate", "5", "--years", "30",
		"--repay-month", "300", "--repay-amount", "10000",
	)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	assertContains(t, out, "warning: month 300 is past the recommended window (<= 288)")
}

func TestScheduleCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "negative rate",
			args: []string{"schedule", "--principal", "1000", "--rate=-1", "--years", "10"},
			want: "error: InvalidLoanSpec: field=interestRate value=-1",
		},
		{
			name: "zero term",
			args: []string{"schedule", "--principal", "1000", "--rate", "5", "--years", "0"},
			want: "error: InvalidLoanSpec: field=termYears value=0",
		},
		{
			name: "month out of range",
			args: []string{"schedule", "--principal", "1000", "--rate", "5", "--years", "1",
				"--repay-month", "12", "--repay-amount", "100"},
			want: "error: RepaymentMonthOutOfRange: field=repaymentMonth value=12",
		},
		{
			name: "shorten term on level principal",
			args: []string{"schedule", "--principal", "1000", "--rate", "5", "--years", "1",
				"--method", "level_principal", "--repay-month", "3", "--repay-amount", "100"},
			want: "error: UnsupportedPolicyForConvention: field=policy",
		},
		{
			name: "unknown policy",
			args: []string{"schedule", "--principal", "1000", "--rate", "5", "--years", "1",
				"--repay-month", "3", "--repay-amount", "100", "--policy", "skip"},
			want: "error: InvalidRepaymentEvent: field=policy value=skip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit code = %d, want 1 (stdout: %s)", code, out)
			}
			assertContains(t, errOut, tt.want)
		})
	}
}

func TestScheduleCommand_MissingPrincipal(t *testing.T) {
	code, _, errOut := runCLI(t, "schedule", "--rate", "5")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	assertContains(t, errOut, `required flag(s) "principal" not set`)
}

func TestCombinedCommand(t *testing.T) {
	code, out, errOut := runCLI(t,
		"combined",
		"--commercial", "600000", "--commercial-rate", "4.9",
		"--fund", "400000", "--fund-rate", "3.25",
		"--years", "30",
		"--repay-month", "24", "--repay-amount", "100000", "--policy", "reduce_payment",
	)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}

	assertContains(t, out,
		"Commercial loan",
		"Fund loan",
		"Combined",
		"Effect:         reduced_payment",
	)
}

func TestCombinedCommand_UnknownRateOption(t *testing.T) {
	code, _, errOut := runCLI(t,
		"combined",
		"--commercial", "600000", "--commercial-rate", "4.9",
		"--fund", "400000", "--fund-rate", "3.25",
		"--repay-month", "24", "--repay-amount", "100000", "--rate-option", "best",
	)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	assertContains(t, errOut, "error: InvalidRepaymentEvent: field=rateOption value=best")
}

func TestVersionCommand(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	assertContains(t, out, "mortgage-planner dev", "commit:")
}

func TestNewCache(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger := discardLogger()

	cache, closeCache, err := newCache(ctx, config.CacheConfig{Backend: "none"}, logger)
	if err != nil || cache != nil {
		t.Fatalf("none backend: cache=%v err=%v", cache, err)
	}
	closeCache()

	cache, closeCache, err = newCache(ctx, config.CacheConfig{Backend: "memory", TTL: time.Minute}, logger)
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	if _, ok := cache.(*repository.MemoryCache); !ok {
		t.Errorf("memory backend returned %T", cache)
	}
	closeCache()

	_, _, err = newCache(ctx, config.CacheConfig{Backend: "redis", RedisAddr: "127.0.0.1:1", TTL: time.Minute}, logger)
	if err == nil {
		t.Error("expected an error for an unreachable redis")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
