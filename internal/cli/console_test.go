//go:build unit

package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"toolrental-service/internal/cli"
	"toolrental-service/internal/infra/catalog"
	"toolrental-service/internal/pkg/clock"
	"toolrental-service/internal/pkg/config"
	"toolrental-service/internal/usecase"
	"toolrental-service/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(t *testing.T, input string) (*cli.Console, *bytes.Buffer) {
	t.Helper()
	store, err := catalog.NewDefault()
	require.NoError(t, err)

	mockClock := clock.NewMockClock(time.UnixMilli(1711154921145))
	uc := usecase.NewCheckoutUseCase(store, mockClock, config.NewTestConfig())
	q := queries.NewToolQueries(store)

	var out bytes.Buffer
	return cli.NewConsole(uc, q, strings.NewReader(input), &out), &out
}

func TestConsoleRun_SingleAgreement(t *testing.T) {
	console, out := newConsole(t, "CHNS\n5\n10\n03/16/24\nq\n")

	err := console.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Rental Agreement Generator")
	assert.Contains(t, output, "Rental Agreement\n----------------")
	assert.Contains(t, output, "Tool code: CHNS")
	assert.Contains(t, output, "Check out date: 03/16/24")
	assert.Contains(t, output, "Due date: 03/21/24")
	assert.Contains(t, output, "Charge days: 4")
	assert.Contains(t, output, "Pre-discount charge: $5.96")
	assert.Contains(t, output, "Discount amount: $0.60")
	assert.Contains(t, output, "Final charge: $5.36")
}

func TestConsoleRun_RepromptsOnInvalidToolCode(t *testing.T) {
	console, out := newConsole(t, "DRIL\nLADW\n2\n0\n03/18/24\nq\n")

	err := console.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "tool code is not valid: DRIL")
	assert.Contains(t, output, "Valid codes:")
	assert.Contains(t, output, "CHNS")
	assert.Contains(t, output, "JAKR")
	assert.Equal(t, 2, strings.Count(output, "Enter tool code: "))
	assert.Contains(t, output, "Tool code: LADW")
}

func TestConsoleRun_RepromptsOnBadNumbers(t *testing.T) {
	console, out := newConsole(t, "LADW\nabc\n0\n2\n250\n10\n03/18/24\nq\n")

	err := console.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Invalid rental days. Please enter a positive integer.")
	assert.Contains(t, output, "rental days must be greater than zero")
	assert.Contains(t, output, "discount percent must be between 0 and 100")
	assert.Equal(t, 3, strings.Count(output, "Enter rental days (> 0): "))
	assert.Equal(t, 2, strings.Count(output, "Enter discount percent (0-100): "))
	assert.Contains(t, output, "Final charge:")
}

func TestConsoleRun_RepromptsOnBadDateFormat(t *testing.T) {
	console, out := newConsole(t, "LADW\n2\n0\n2024-03-18\n03/18/24\nq\n")

	err := console.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Invalid checkout date format. Please use MM/DD/YY.")
	assert.Equal(t, 2, strings.Count(output, "Enter checkout date (MM/DD/YY): "))
	assert.Contains(t, output, "Check out date: 03/18/24")
}

func TestConsoleRun_LoopsUntilQuit(t *testing.T) {
	console, out := newConsole(t, "CHNS\n5\n10\n03/16/24\n\nLADW\n2\n0\n03/18/24\nq\n")

	err := console.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Equal(t, 2, strings.Count(output, "Final charge:"))
	assert.Contains(t, output, "Tool code: CHNS")
	assert.Contains(t, output, "Tool code: LADW")
}

func TestConsoleRun_StopsOnEOF(t *testing.T) {
	console, out := newConsole(t, "CHNS\n5\n")

	err := console.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Enter discount percent (0-100): ")
	assert.NotContains(t, out.String(), "Final charge:")
}
