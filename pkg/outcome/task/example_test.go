package task_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/task"
)

func ExampleTask_Run() {
	load := task.New[int]("store", "load")
	inner := load.Failf("not found")

	rec := task.New[int]("api", "get").Run(func() (int, error) {
		return 0, inner
	})

	fmt.Println(rec.IsSuccess())
	fmt.Println(rec)
	// Output:
	// false
	// api.get()
	//     store.load() - not found
}

func ExampleTask_On() {
	t := task.New[int]("A", "b")
	t.On(task.ChannelSuccess, task.ListenerFunc(func(e task.Event[int]) {
		fmt.Println("success", e.Record.Value())
	}))
	t.On(task.ChannelComplete, task.ListenerFunc(func(e task.Event[int]) {
		fmt.Println("complete", e.Record.IsSuccess())
	}))

	t.Success(5)
	// Output:
	// success 5
	// complete true
}

func ExampleTask_RunAsync() {
	f := task.New[string]("mail", "send").RunAsync(func() (string, error) {
		return "", errors.New("smtp unavailable")
	})

	rec, err := f.Wait()
	fmt.Println(rec, err)
	// Output:
	// mail.send() - smtp unavailable <nil>
}
