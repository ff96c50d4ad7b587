package view

import (
	"strings"

	"github.com/pkg/errors"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

var imageFileTypes = []FileType{
	{TypeName: "Images", Extensions: []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}},
	{TypeName: "All files", Extensions: []string{"*"}},
}

// ChooseImageFile asks for a source image. Returns "" on cancel.
func (rv *RootView) ChooseImageFile() string {
	files := GetOpenFile(Title("Open image"), Filetypes(imageFileTypes))
	if len(files) == 0 {
		return ""
	}
	return strings.TrimSpace(files[0])
}

// ChooseDirectory asks for the export directory. Returns "" on cancel.
func (rv *RootView) ChooseDirectory(initial string) string {
	opts := []Opt{Title("Export to"), Mustexist(true)}
	if initial != "" {
		opts = append(opts, Initialdir(initial))
	}
	return strings.TrimSpace(ChooseDirectory(opts...))
}

// Confirm shows a yes/no question and reports whether the user agreed.
func (rv *RootView) Confirm(title, message string) bool {
	return MessageBox(Icon("question"), Type("yesno"), Title(title), Msg(message)) == "yes"
}

// ShowError reports err in a modal message box.
func (rv *RootView) ShowError(title string, err error) {
	if err == nil {
		return
	}
	if rv.logger != nil {
		rv.logger.Debug("error shown", "title", title, "error", err)
	}
	MessageBox(Icon("error"), Type("ok"), Title(title), Msg(errors.Cause(err).Error()), Detail(err.Error()))
}
