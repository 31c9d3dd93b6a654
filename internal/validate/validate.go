// Package validate checks the invariants of the API model before any
// backend runs. A model defect is a programming error in the table, not a
// runtime condition: Validate returns a single descriptive error naming the
// offending call(s) and the broken rule, and the driver must not open any
// sink until Validate returns nil.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vmguest/apigen/internal/model"
)

// Validate checks every invariant from the model's specification and
// returns the first one it finds broken. Checks run in a fixed order so
// that the same malformed table always reports the same diagnostic.
func Validate(calls []model.Call) error {
	if err := checkNames(calls); err != nil {
		return err
	}
	if err := checkLongDescriptions(calls); err != nil {
		return err
	}
	if err := checkProcedureNumbers(calls); err != nil {
		return err
	}
	if err := checkNoConstStringOnDaemon(calls); err != nil {
		return err
	}
	return nil
}

func checkNames(calls []model.Call) error {
	for _, c := range calls {
		if c.Name == "" {
			return fmt.Errorf("validate: call has empty name")
		}
		if strings.ContainsRune(c.Name, '-') {
			return fmt.Errorf("validate: call %q: name contains a hyphen", c.Name)
		}
		for i, r := range c.Name {
			ok := (r >= 'a' && r <= 'z') || r == '_' || (i > 0 && r >= '0' && r <= '9')
			if !ok {
				return fmt.Errorf("validate: call %q: name is not [a-z_][a-z0-9_]*", c.Name)
			}
		}
	}
	return dupNames(calls)
}

func dupNames(calls []model.Call) error {
	seen := make(map[string]bool, len(calls))
	for _, c := range calls {
		if seen[c.Name] {
			return fmt.Errorf("validate: call name %q is used more than once", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func checkLongDescriptions(calls []model.Call) error {
	for _, c := range calls {
		if c.LongDesc == "" {
			continue
		}
		last := c.LongDesc[len(c.LongDesc)-1]
		if last == '\n' || last == '\r' {
			return fmt.Errorf("validate: call %q: long description ends with a line terminator", c.Name)
		}
	}
	return nil
}

func checkProcedureNumbers(calls []model.Call) error {
	type numbered struct {
		name string
		proc int
	}
	var nums []numbered

	for _, c := range calls {
		if c.IsDaemon() {
			if c.Proc <= 0 {
				return fmt.Errorf("validate: call %q: daemon call has non-positive procedure number %d", c.Name, c.Proc)
			}
			nums = append(nums, numbered{c.Name, c.Proc})
		} else if c.Proc != model.NoProcedure {
			return fmt.Errorf("validate: call %q: client-only call does not carry the NoProcedure sentinel", c.Name)
		}
	}

	sort.Slice(nums, func(i, j int) bool { return nums[i].proc < nums[j].proc })
	for i := 1; i < len(nums); i++ {
		if nums[i].proc == nums[i-1].proc {
			return fmt.Errorf("validate: calls %q and %q share procedure number %d",
				nums[i-1].name, nums[i].name, nums[i].proc)
		}
	}
	return nil
}

func checkNoConstStringOnDaemon(calls []model.Call) error {
	for _, c := range calls {
		if c.IsDaemon() && c.Sig.Ret == model.RetConstString {
			return fmt.Errorf("validate: call %q: const_string is forbidden as a daemon call's return kind", c.Name)
		}
	}
	return nil
}
