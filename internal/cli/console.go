// Package cli implements the interactive rental agreement console: it
// gathers the four checkout inputs field by field, re-prompting on
// validation failure, and prints the rendered agreement.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"toolrental-service/internal/pkg/format"
	"toolrental-service/internal/usecase"
	"toolrental-service/internal/usecase/queries"
)

type Console struct {
	checkoutUseCase usecase.CheckoutUseCase
	toolQueries     queries.ToolQueries
	in              *bufio.Scanner
	out             io.Writer
}

func NewConsole(checkoutUseCase usecase.CheckoutUseCase, toolQueries queries.ToolQueries, in io.Reader, out io.Writer) *Console {
	return &Console{
		checkoutUseCase: checkoutUseCase,
		toolQueries:     toolQueries,
		in:              bufio.NewScanner(in),
		out:             out,
	}
}

// Run drives the prompt loop until the user quits or input is exhausted.
func (c *Console) Run(ctx context.Context) error {
	c.printLine("Rental Agreement Generator")
	c.printLine("--------------------------")
	c.printLine("")

	for {
		toolCode, ok := c.readToolCode(ctx)
		if !ok {
			return nil
		}
		rentalDays, ok := c.readRentalDays()
		if !ok {
			return nil
		}
		discountPercent, ok := c.readDiscountPercent()
		if !ok {
			return nil
		}
		checkoutDate, ok := c.readCheckoutDate()
		if !ok {
			return nil
		}

		rentalAgreement, err := c.checkoutUseCase.Checkout(ctx, usecase.CheckoutParams{
			ToolCode:        toolCode,
			CheckoutDate:    checkoutDate,
			RentalDays:      rentalDays,
			DiscountPercent: discountPercent,
		})
		if err != nil {
			c.printLine("An error occurred: " + err.Error())
		} else {
			c.printLine("")
			c.printLine("Rental Agreement")
			c.printLine("----------------")
			c.printLine(rentalAgreement.Render())
		}

		if !c.promptForAnother() {
			return nil
		}
	}
}

// readToolCode prompts until a valid tool code is entered, listing the
// valid codes after a failed attempt.
func (c *Console) readToolCode(ctx context.Context) (string, bool) {
	for {
		code, ok := c.prompt("Enter tool code: ")
		if !ok {
			return "", false
		}
		if err := c.checkoutUseCase.ValidateToolCode(code); err != nil {
			c.printLine(err.Error())
			c.printLine("Valid codes:")
			for _, valid := range c.toolQueries.ToolCodes(ctx) {
				c.printLine(valid)
			}
			c.printLine("")
			continue
		}
		return code, true
	}
}

func (c *Console) readRentalDays() (int, bool) {
	for {
		input, ok := c.prompt("Enter rental days (> 0): ")
		if !ok {
			return 0, false
		}
		days, err := strconv.Atoi(input)
		if err != nil {
			c.printLine("Invalid rental days. Please enter a positive integer.")
			continue
		}
		if err := c.checkoutUseCase.ValidateRentalDays(days); err != nil {
			c.printLine(err.Error())
			continue
		}
		return days, true
	}
}

func (c *Console) readDiscountPercent() (int, bool) {
	for {
		input, ok := c.prompt("Enter discount percent (0-100): ")
		if !ok {
			return 0, false
		}
		percent, err := strconv.Atoi(input)
		if err != nil {
			c.printLine("Invalid discount percent. Please enter a number between 0 and 100.")
			continue
		}
		if err := c.checkoutUseCase.ValidateDiscountPercent(percent); err != nil {
			c.printLine(err.Error())
			continue
		}
		return percent, true
	}
}

func (c *Console) readCheckoutDate() (time.Time, bool) {
	for {
		input, ok := c.prompt("Enter checkout date (MM/DD/YY): ")
		if !ok {
			return time.Time{}, false
		}
		date, err := time.ParseInLocation(format.ShortDateLayout, input, time.UTC)
		if err != nil {
			c.printLine("Invalid checkout date format. Please use MM/DD/YY.")
			continue
		}
		if err := c.checkoutUseCase.ValidateCheckoutDate(date); err != nil {
			c.printLine(err.Error())
			continue
		}
		return date, true
	}
}

func (c *Console) promptForAnother() bool {
	input, ok := c.prompt("Hit Return for another Rental Agreement or 'q' to quit: ")
	if !ok {
		return false
	}
	c.printLine("")
	return input != "q"
}

// prompt returns ok=false when input is exhausted (EOF).
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printLine(s string) {
	fmt.Fprintln(c.out, s)
}
