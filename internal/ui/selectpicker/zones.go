package selectpicker

import "fmt"

// Zone ID format for one picker instance (namespaced by instance ID so
// several pickers can share a screen):
// - Toggle control: picker:{id}:toggle
// - Clear affordance: picker:{id}:clear
// - Menu panel: picker:{id}:panel
// - Option rows: picker:{id}:opt:{rowIndex}
// - Group headers: picker:{id}:grp:{rowIndex}

func (m Model[T]) toggleZoneID() string {
	return fmt.Sprintf("picker:%s:toggle", m.id)
}

func (m Model[T]) clearZoneID() string {
	return fmt.Sprintf("picker:%s:clear", m.id)
}

func (m Model[T]) panelZoneID() string {
	return fmt.Sprintf("picker:%s:panel", m.id)
}

func (m Model[T]) optionZoneID(rowIdx int) string {
	return fmt.Sprintf("picker:%s:opt:%d", m.id, rowIdx)
}

func (m Model[T]) groupZoneID(rowIdx int) string {
	return fmt.Sprintf("picker:%s:grp:%d", m.id, rowIdx)
}
