package cursor

import "fmt"

// Args holds the standard connection pagination arguments.
type Args struct {
	First  *int
	Last   *int
	Before string
	After  string
}

// ParseArgs extracts pagination arguments from a resolver's argument map.
func ParseArgs(args map[string]interface{}) Args {
	parsed := Args{}
	if v, ok := args["first"].(int); ok {
		parsed.First = &v
	}
	if v, ok := args["last"].(int); ok {
		parsed.Last = &v
	}
	if v, ok := args["before"].(string); ok {
		parsed.Before = v
	}
	if v, ok := args["after"].(string); ok {
		parsed.After = v
	}
	return parsed
}

// Page is the resolved window of a connection over total rows. Start is
// inclusive and End exclusive, both absolute offsets into the ordering.
type Page struct {
	Start       int
	End         int
	HasPrevious bool
	HasNext     bool
}

// Len returns the number of rows in the window.
func (p Page) Len() int {
	return p.End - p.Start
}

// Cursor returns the cursor for the i-th row of the window.
func (p Page) Cursor(i int) string {
	return Encode(p.Start + i)
}

// SlicePage computes the window selected by the pagination arguments over a
// connection of total rows.
func SlicePage(total int, args Args) (Page, error) {
	beforeOffset := offsetWithDefault(args.Before, total)
	afterOffset := offsetWithDefault(args.After, -1)

	start := afterOffset + 1
	if start < 0 {
		start = 0
	}
	end := total
	if beforeOffset < end {
		end = beforeOffset
	}

	if args.First != nil {
		if *args.First < 0 {
			return Page{}, fmt.Errorf("argument 'first' must be a non-negative integer")
		}
		if limit := start + *args.First; limit < end {
			end = limit
		}
	}
	if args.Last != nil {
		if *args.Last < 0 {
			return Page{}, fmt.Errorf("argument 'last' must be a non-negative integer")
		}
		if limit := end - *args.Last; limit > start {
			start = limit
		}
	}

	if end < start {
		end = start
	}

	lowerBound := 0
	if args.After != "" {
		lowerBound = afterOffset + 1
	}
	upperBound := total
	if args.Before != "" {
		upperBound = beforeOffset
	}

	page := Page{Start: start, End: end}
	if args.Last != nil {
		page.HasPrevious = start > lowerBound
	}
	if args.First != nil {
		page.HasNext = end < upperBound
	}
	return page, nil
}
