package visualizer

import (
	"fmt"
	"io"

	"github.com/henderiw/sortviz/pkg/algorithm"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/labels"
)

func list(out io.Writer, selector string) error {
	sel, err := labels.Parse(selector)
	if err != nil {
		return errors.Wrapf(err, "parse selector %q", selector)
	}
	for _, k := range algorithm.Select(sel) {
		if _, err := fmt.Fprintf(out, "%-10s %-16s %s\n", k, k.FullName(), algorithm.Labels(k)); err != nil {
			return err
		}
	}
	return nil
}
