package style

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteInstalled generates the installed stylesheet. It is a wrapper rather
// than a copy: the resolved style is imported first, then the generated
// theme, then user overrides. The order is a contract — user overrides must
// always apply last.
func WriteInstalled(dst, resolved, theme, user string) error {
	if _, err := os.Stat(resolved); err != nil {
		return fmt.Errorf("%w: %s", ErrUnresolved, resolved)
	}

	content := fmt.Sprintf(`/* Generated by waybarctl; edits are overwritten on layout switch. */
@import %q;
@import %q;
@import %q;
`, resolved, theme, user)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create style dir: %w", err)
	}
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return fmt.Errorf("write style: %w", err)
	}
	return nil
}
