package relevance

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
)

// SendTask llama al procedimiento de relevancia en el nodo remoto: una
// conexión, una tarea, una respuesta. El deadline del contexto se aplica
// también a la lectura/escritura sobre la conexión para que la llamada
// nunca quede colgada.
func SendTask(ctx context.Context, addr string, task *Task) (*Response, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	enc := json.NewEncoder(conn)
	if err := enc.Encode(task); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(conn))
	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
