// Package websocket транслирует состояние симуляции по WebSocket.
//
// Центральный Hub держит множество клиентов и рассылает им сообщения.
// Каждое соединение обслуживают две горутины: readPump разбирает входящие
// команды и передаёт их CommandHandler, writePump пишет исходящие
// сообщения и пинги.
//
// Протокол (JSON):
//   - входящие: {"action": "place", "type": "standard", "x": 100, "y": 100}
//     {"action": "remove", "x": 100, "y": 100}, {"action": "reset"},
//     {"action": "cycle"}
//   - исходящие: {"event": "snapshot", "data": {...}} с частотой SnapshotHz
//     и {"event": "ack" | "error", "data": ...} в ответ на команду.
//
// Использование:
//
//	srv := websocket.NewServer(game, settings.SnapshotHz, logger)
//	go srv.Run(ctx)
//	http.ListenAndServe(addr, srv.Handler())
package websocket
