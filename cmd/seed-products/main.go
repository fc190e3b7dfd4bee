package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// 通过后台管理端 API 灌入一批演示商品，方便本地联调

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      int     `json:"status"`
}

type ApiResponse struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func main() {
	adminURL := "http://localhost:8081/api"
	client := &http.Client{}

	products := []ProductRequest{
		{Name: "Widget", Description: "A plain widget", Price: 19.99, Status: 1},
		{Name: "Gadget", Description: "A fancy gadget", Price: 49.50, Status: 1},
		{Name: "Gizmo", Description: "Limited edition gizmo", Price: 129.00, Status: 1},
		{Name: "Doohickey", Description: "Retired doohickey", Price: 5.25, Status: 0},
	}

	for i, p := range products {
		body, err := json.Marshal(p)
		if err != nil {
			fmt.Printf("[%d/%d] marshal failed: %v\n", i+1, len(products), err)
			continue
		}
		resp, err := client.Post(adminURL+"/products", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("[%d/%d] create %s failed: %v\n", i+1, len(products), p.Name, err)
			continue
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var apiResp ApiResponse
		if err := json.Unmarshal(raw, &apiResp); err != nil || apiResp.Code != 0 {
			fmt.Printf("[%d/%d] create %s rejected: %s\n", i+1, len(products), p.Name, string(raw))
			continue
		}
		fmt.Printf("[%d/%d] created %s ($%.2f)\n", i+1, len(products), p.Name, p.Price)
	}
}
