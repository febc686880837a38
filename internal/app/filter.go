package app

import tea "charm.land/bubbletea/v2"

// FilterMouseMotion drops mouse motion unless a drag or resize holds the
// pointer. The view asks for all-motion reporting, so most motion events
// would otherwise trigger a redraw for nothing.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	m, ok := model.(*Model)
	if !ok {
		return msg
	}
	if m.Pointer.Active() {
		return msg
	}
	return nil
}
