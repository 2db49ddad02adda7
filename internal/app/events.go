package app

import (
	"sync"

	"go.uber.org/zap"
)

// Event представляет событие в системе
type Event interface {
	Type() string
	Data() interface{}
}

// EventHandler обработчик события
type EventHandler func(Event)

// EventBus шина событий для связи между компонентами
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

// NewEventBus создает новую шину событий
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe подписывается на событие
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
}

// Publish публикует событие
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	handlers := eb.handlers[event.Type()]
	eb.mu.RUnlock()

	// Запускаем обработчики в отдельных горутинах
	for _, handler := range handlers {
		go handler(event)
	}
}

// Unsubscribe отписывается от всех обработчиков события
func (eb *EventBus) Unsubscribe(eventType string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.handlers, eventType)
}

// Типы событий
const (
	EventViewOpened       = "view.opened"
	EventViewClosed       = "view.closed"
	EventCommandExecuted  = "command.executed"
	EventPluginLoaded     = "plugin.loaded"
	EventSettingsReloaded = "settings.reloaded"
)

// BaseEvent базовая реализация события
type BaseEvent struct {
	EventType string
	EventData interface{}
}

func (e BaseEvent) Type() string      { return e.EventType }
func (e BaseEvent) Data() interface{} { return e.EventData }

// ViewEvent панель открыта или закрыта
type ViewEvent struct {
	BaseEvent
	ViewType string
}

// NewViewOpenedEvent создает событие открытия панели
func NewViewOpenedEvent(viewType string) *ViewEvent {
	return &ViewEvent{
		BaseEvent: BaseEvent{EventType: EventViewOpened, EventData: viewType},
		ViewType:  viewType,
	}
}

// NewViewClosedEvent создает событие закрытия панели
func NewViewClosedEvent(viewType string) *ViewEvent {
	return &ViewEvent{
		BaseEvent: BaseEvent{EventType: EventViewClosed, EventData: viewType},
		ViewType:  viewType,
	}
}

// CommandExecutedEvent команда выполнена
type CommandExecutedEvent struct {
	BaseEvent
	CommandID string
	Err       error
}

// NewCommandExecutedEvent создает событие выполнения команды
func NewCommandExecutedEvent(id string, err error) *CommandExecutedEvent {
	return &CommandExecutedEvent{
		BaseEvent: BaseEvent{
			EventType: EventCommandExecuted,
			EventData: map[string]interface{}{"id": id, "error": err},
		},
		CommandID: id,
		Err:       err,
	}
}

// PluginEvent событие жизненного цикла плагина
type PluginEvent struct {
	BaseEvent
	PluginID string
	Err      error
}

// NewPluginLoadedEvent создает событие загрузки плагина
func NewPluginLoadedEvent(id string, err error) *PluginEvent {
	return &PluginEvent{
		BaseEvent: BaseEvent{EventType: EventPluginLoaded, EventData: id},
		PluginID:  id,
		Err:       err,
	}
}

// NewSettingsReloadedEvent создает событие перечитывания данных плагина
func NewSettingsReloadedEvent(id string, err error) *PluginEvent {
	return &PluginEvent{
		BaseEvent: BaseEvent{EventType: EventSettingsReloaded, EventData: id},
		PluginID:  id,
		Err:       err,
	}
}

// subscribeLogger пишет все доменные события в лог
func subscribeLogger(bus *EventBus, logger *zap.Logger) {
	log := func(e Event) {
		fields := []zap.Field{zap.String("event", e.Type())}
		switch ev := e.(type) {
		case *ViewEvent:
			fields = append(fields, zap.String("view_type", ev.ViewType))
		case *CommandExecutedEvent:
			fields = append(fields, zap.String("command", ev.CommandID))
			if ev.Err != nil {
				fields = append(fields, zap.Error(ev.Err))
			}
		case *PluginEvent:
			fields = append(fields, zap.String("plugin", ev.PluginID))
			if ev.Err != nil {
				fields = append(fields, zap.Error(ev.Err))
			}
		}
		logger.Debug("event", fields...)
	}

	for _, t := range []string{
		EventViewOpened,
		EventViewClosed,
		EventCommandExecuted,
		EventPluginLoaded,
		EventSettingsReloaded,
	} {
		bus.Subscribe(t, log)
	}
}
