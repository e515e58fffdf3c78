package folio

import "testing"

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		money      Money
		wantString string
		wantCode   string
	}{
		{M(1234.5, "USD"), "$1,234.50", "1,234.50 USD"},
		{M(1000000.004, "USD"), "$1,000,000.00", "1,000,000.00 USD"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.wantString {
			t.Errorf("String() = %q, want %q", got, tc.wantString)
		}
		if got := tc.money.Code(); got != tc.wantCode {
			t.Errorf("Code() = %q, want %q", got, tc.wantCode)
		}
	}
}

func TestMoney_Ratio(t *testing.T) {
	assertPercent(t, "Ratio", INR(25).Ratio(INR(200)), 12.5)
	assertPercent(t, "Ratio by zero", INR(25).Ratio(INR(0)), 0)
	assertPercent(t, "Ratio by negative", INR(25).Ratio(INR(-10)), 0)
}
