package logic

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
)

func (h *Handler) createBoard(name string) tea.Cmd {
	lib := h.Library
	return func() tea.Msg {
		b, err := lib.Create(name)
		if err != nil {
			return errMsg{err}
		}
		log.Info("created board", "id", b.ID, "name", b.Name)
		return boardCreatedMsg{board: b}
	}
}

func (h *Handler) renameBoard(id, name string) tea.Cmd {
	lib := h.Library
	return func() tea.Msg {
		b, err := lib.Rename(id, name)
		if err != nil {
			return errMsg{err}
		}
		log.Info("renamed board", "id", b.ID, "name", b.Name)
		return boardRenamedMsg{board: b}
	}
}

func (h *Handler) deleteBoard(id, name string) tea.Cmd {
	lib := h.Library
	notify := h.Config != nil && h.Config.UI.NotifyOnDelete
	return func() tea.Msg {
		if err := lib.Delete(id); err != nil {
			return errMsg{err}
		}
		log.Info("deleted board", "id", id, "name", name)

		if notify {
			if err := beeep.Notify("Gallery", "Deleted board: "+name, ""); err != nil {
				log.Warn("failed to send notification", "err", err)
			}
		}

		return boardDeletedMsg{id: id, name: name}
	}
}

func (h *Handler) copyBoardID(id string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(id); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied board id"}
	}
}
