// Package ui 实现基于 Bubble Tea 的终端界面。
// 联机模式通过 transport 包与服务器通信，
// 单机模式直接在本地驱动规则引擎和机器人，两者复用同一套牌桌渲染
package ui
