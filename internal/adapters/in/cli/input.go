package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// errInputClosed signals that the input stream ended. The menu loop treats
// it as a normal exit, so piped scripts terminate cleanly.
var errInputClosed = errors.New("input closed")

func (c *CLI) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", errInputClosed
		}

		line := strings.TrimSpace(c.in.Text())
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(c.out, "Input cannot be empty, try again.")
	}
}

// readInt re-prompts until the user types a whole number.
func (c *CLI) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(c.out, "Please enter a whole number.")
			continue
		}
		return value, nil
	}
}

// readID re-prompts until the user types a positive identifier.
func (c *CLI) readID(prompt string) (kernel.ID, error) {
	for {
		value, err := c.readInt(prompt)
		if err != nil {
			return kernel.ID{}, err
		}

		id, idErr := kernel.NewID(value)
		if idErr != nil {
			fmt.Fprintln(c.out, "Identifiers are positive numbers, try again.")
			continue
		}
		return id, nil
	}
}

// readMoney re-prompts until the user types a non-negative decimal amount.
func (c *CLI) readMoney(prompt string) (kernel.Money, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return kernel.Money{}, err
		}

		money, moneyErr := kernel.NewMoneyFromString(line)
		if moneyErr != nil {
			fmt.Fprintln(c.out, "Please enter a non-negative amount, e.g. 8.99.")
			continue
		}
		return money, nil
	}
}

// readStatus re-prompts until the user types a known order status.
func (c *CLI) readStatus(prompt string) (order.Status, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return order.Unknown, err
		}

		status, statusErr := order.StatusFromString(line)
		if statusErr != nil {
			fmt.Fprintln(c.out, "Unknown status. Choose one of: Pending, Assigned, OutForDelivery, Delivered, Cancelled.")
			continue
		}
		return status, nil
	}
}

func isInputClosed(err error) bool {
	return errors.Is(err, errInputClosed) || errors.Is(err, io.EOF)
}
