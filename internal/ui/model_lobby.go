package ui

import (
	"github.com/palemoky/uno-arena/internal/protocol"
)

// menuItems 大厅菜单项
var menuItems = []string{
	"创建房间（经典）",
	"创建房间（翻转）",
	"查看房间列表",
	"退出游戏",
}

// LobbyModel 大厅子模型：菜单导航和房间列表
type LobbyModel struct {
	width  int
	height int

	// 菜单导航
	selectedIndex int

	// 房间列表
	availableRooms  []protocol.RoomListItem
	selectedRoomIdx int
}

// NewLobbyModel 创建大厅子模型
func NewLobbyModel() *LobbyModel {
	return &LobbyModel{}
}

// SetAvailableRooms 更新房间列表并重置选中项
func (m *LobbyModel) SetAvailableRooms(rooms []protocol.RoomListItem) {
	m.availableRooms = rooms
	m.selectedRoomIdx = 0
}

// SelectedRoom 返回当前选中的房间，列表为空时返回 nil
func (m *LobbyModel) SelectedRoom() *protocol.RoomListItem {
	if len(m.availableRooms) == 0 {
		return nil
	}
	return &m.availableRooms[m.selectedRoomIdx]
}

// handleUpKey 按游戏阶段移动选中项
func (m *LobbyModel) handleUpKey(phase GamePhase) {
	if phase == PhaseRoomList && len(m.availableRooms) > 0 {
		m.selectedRoomIdx--
		if m.selectedRoomIdx < 0 {
			m.selectedRoomIdx = len(m.availableRooms) - 1
		}
	} else if phase == PhaseLobby {
		m.selectedIndex--
		if m.selectedIndex < 0 {
			m.selectedIndex = len(menuItems) - 1
		}
	}
}

// handleDownKey 按游戏阶段移动选中项
func (m *LobbyModel) handleDownKey(phase GamePhase) {
	if phase == PhaseRoomList && len(m.availableRooms) > 0 {
		m.selectedRoomIdx++
		if m.selectedRoomIdx >= len(m.availableRooms) {
			m.selectedRoomIdx = 0
		}
	} else if phase == PhaseLobby {
		m.selectedIndex++
		if m.selectedIndex >= len(menuItems) {
			m.selectedIndex = 0
		}
	}
}
