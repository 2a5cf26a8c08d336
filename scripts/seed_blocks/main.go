package main

import (
	"fmt"
	"log"

	"github.com/buttonicons/internal/buttonicon"
	"github.com/buttonicons/internal/config"
	"github.com/buttonicons/internal/db"
	"github.com/buttonicons/internal/service"
	"github.com/buttonicons/internal/view"
)

const sampleCustomSVG = `<svg viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg">
	<circle cx="12" cy="12" r="8" />
</svg>`

// 示例数据生成器：为图标库中的每个图标生成一个按钮，并附带一个自定义 SVG 按钮
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	blocks := service.NewBlockService(db.DB)

	fmt.Println("开始生成示例按钮...")
	for i, icon := range view.ButtonIcons() {
		value := icon.Value
		left := i%2 == 1
		if _, err := blocks.Create(service.BlockInput{
			Text: icon.Label,
			URL:  "#" + icon.Value,
			Attributes: buttonicon.AttributeBag{
				Icon:             &value,
				IconPositionLeft: &left,
			},
		}); err != nil {
			log.Fatalf("创建按钮 %s 失败: %v", icon.Value, err)
		}
	}

	custom, err := blocks.Create(service.BlockInput{Text: "**Custom** icon"})
	if err != nil {
		log.Fatal("创建自定义按钮失败:", err)
	}
	if _, err := blocks.ApplyAction(custom.ID, service.PanelAction{
		Action: service.ActionChangeCustomSVG,
		Value:  sampleCustomSVG,
	}); err != nil {
		log.Fatal("写入自定义 SVG 失败:", err)
	}

	fmt.Printf("示例数据生成完成：%d 个按钮\n", len(view.ButtonIcons())+1)
}
